package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/storage/memory"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded(DefaultLexicon))
	s.Equal(0, s.service.WordCount(DefaultLexicon))
	s.Empty(s.service.Names())

	_, err := s.service.Lexicon("")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords("", []string{"apple", "banana", "cherry"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded(DefaultLexicon))
	s.Equal(3, s.service.WordCount(""))
	s.Equal([]string{DefaultLexicon}, s.service.Names())
}

func (s *ServiceSuite) TestLoadWordsNormalizes() {
	err := s.service.LoadWords("", []string{"Apple", " BANANA ", "apple", "e-mail"})
	s.Require().NoError(err)

	lex, err := s.service.Lexicon("")
	s.Require().NoError(err)
	s.Equal([]string{"APPLE", "BANANA"}, lex.Words())
}

func (s *ServiceSuite) TestLoadWordsRejectsEmpty() {
	err := s.service.LoadWords("", []string{"", "123"})
	s.ErrorIs(err, model.ErrEmptyLexicon)
	s.False(s.service.IsLoaded(""))
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	_ = s.service.LoadWords("", []string{"Apple"})

	s.True(s.service.IsValidWord("", "apple"))
	s.True(s.service.IsValidWord("", "APPLE"))
	s.False(s.service.IsValidWord("", "grape"))
	s.False(s.service.IsValidWord("other", "apple"))
}

func (s *ServiceSuite) TestNamedLexiconsAreIndependent() {
	s.Require().NoError(s.service.LoadWords("small", []string{"cat"}))
	s.Require().NoError(s.service.LoadWords("", []string{"dog", "eel"}))

	s.Equal(1, s.service.WordCount("small"))
	s.Equal(2, s.service.WordCount(DefaultLexicon))
	s.Equal([]string{DefaultLexicon, "small"}, s.service.Names())
}

func (s *ServiceSuite) TestReloadKeepsOldSnapshots() {
	s.Require().NoError(s.service.LoadWords("", []string{"cat"}))
	before, err := s.service.Lexicon("")
	s.Require().NoError(err)

	s.Require().NoError(s.service.LoadWords("", []string{"dog"}))

	s.True(before.Contains("CAT"))
	after, err := s.service.Lexicon("")
	s.Require().NoError(err)
	s.False(after.Contains("CAT"))
	s.True(after.Contains("DOG"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	// Pre-populate storage with words
	err := s.storage.SaveLexiconWords(s.ctx, DefaultLexicon, []string{"TEST", "WORD", "EXAMPLE"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx, "")
	s.Require().NoError(err)

	s.Equal(3, s.service.WordCount(""))
	s.True(s.service.IsValidWord("", "test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx, "")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFileSavesToStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("cat\n\ndog\r\nCAT\n"), 0o644))

	err := s.service.LoadFromFile(s.ctx, "", path)
	s.Require().NoError(err)

	s.Equal(2, s.service.WordCount(""))
	saved, err := s.storage.GetLexiconWords(s.ctx, DefaultLexicon)
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, saved)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, "", filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *ServiceSuite) TestLoadFromReader() {
	err := s.service.LoadFromReader(s.ctx, "upload", strings.NewReader("radical\nhello\n"))
	s.Require().NoError(err)

	lex, err := s.service.Lexicon("upload")
	s.Require().NoError(err)
	s.Equal([]string{"HELLO", "RADICAL"}, lex.Words())
}

func (s *ServiceSuite) TestLoadFromReaderRejectsEmpty() {
	err := s.service.LoadFromReader(s.ctx, "upload", strings.NewReader("\n\n"))
	s.ErrorIs(err, model.ErrEmptyLexicon)

	_, err = s.storage.GetLexiconWords(s.ctx, "upload")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadAll() {
	s.Require().NoError(s.storage.SaveLexiconWords(s.ctx, "pets", []string{"CAT", "DOG"}))
	s.Require().NoError(s.storage.SaveLexiconWords(s.ctx, "birds", []string{"OWL"}))

	names, err := s.service.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Equal([]string{"birds", "pets"}, names)
	s.Equal([]string{"birds", "pets"}, s.service.Names())
	s.True(s.service.IsValidWord("pets", "dog"))
}

func (s *ServiceSuite) TestLoadAllEmptyStorage() {
	names, err := s.service.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *ServiceSuite) TestDelete() {
	s.Require().NoError(s.service.LoadFromReader(s.ctx, "pets", strings.NewReader("cat\n")))
	lex, err := s.service.Lexicon("pets")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, "pets"))

	s.False(s.service.IsLoaded("pets"))
	_, err = s.storage.GetLexiconWords(s.ctx, "pets")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	// Snapshots already handed out stay usable
	s.True(lex.Contains("CAT"))
}

func (s *ServiceSuite) TestDeleteNotLoaded() {
	err := s.service.Delete(s.ctx, "")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
