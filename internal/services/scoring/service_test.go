package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabby/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// testPremiums is a 5x5 layout with a triple letter at (1,1), a double
// letter at (3,3), a double word at (0,0) and a triple word at (2,2)
func testPremiums() *model.Premiums {
	p, err := model.ParsePremiums(5,
		[]string{
			".....",
			".3...",
			".....",
			"...2.",
			".....",
		},
		[]string{
			"2....",
			".....",
			"..3..",
			".....",
			".....",
		},
	)
	if err != nil {
		panic(err)
	}
	return p
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(model.DefaultRules())
	b, err := model.NewBoardWithPremiums(5, testPremiums())
	s.Require().NoError(err)
	s.board = b
}

func (s *ServiceSuite) word(row, col int, dir model.Direction, text string) model.Word {
	w, err := model.NewWord(row, col, s.board.Size(), dir, text)
	s.Require().NoError(err)
	return w
}

func (s *ServiceSuite) score(row, col int, dir model.Direction, text string) int {
	score, err := s.service.Score(s.board, s.word(row, col, dir, text))
	s.Require().NoError(err)
	return score
}

// Basic scoring tests

func (s *ServiceSuite) TestPlainWord() {
	s.Equal(5, s.score(4, 0, model.Right, "CAT"))
}

func (s *ServiceSuite) TestLetterPremium() {
	// C3 + A1x3 + T1
	s.Equal(7, s.score(0, 1, model.Down, "CAT"))
}

func (s *ServiceSuite) TestWordPremium() {
	s.Equal(15, s.score(2, 0, model.Right, "CAT"))
}

func (s *ServiceSuite) TestBlankScoresNothing() {
	// C3 + blank + T1
	s.Equal(4, s.score(4, 0, model.Right, "C T"))
}

func (s *ServiceSuite) TestPremiumsAreSpentOnce() {
	s.Require().NoError(s.board.MakeMove(2, 0, "CAT", model.Right))

	// The triple word under T is already covered, so only S is new
	s.Equal(6, s.score(2, 0, model.Right, "CATS"))
}

func (s *ServiceSuite) TestScoringDoesNotSpendPremiums() {
	w := s.word(2, 0, model.Right, "CAT")

	first, err := s.service.Score(s.board, w)
	s.Require().NoError(err)
	second, err := s.service.Score(s.board, w)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Empty(s.board.Words())
	s.Equal(0, s.board.TileCount())
}

func (s *ServiceSuite) TestCrossWords() {
	s.Require().NoError(s.board.MakeMove(0, 0, "CAT", model.Right))

	b, err := s.service.Breakdown(s.board, s.word(1, 1, model.Right, "TO"))
	s.Require().NoError(err)

	// TO: T1x3 + O1. AT reuses the triple letter on the shared square. TO down has no premiums.
	s.Equal(4, b.Primary)
	s.Require().Len(b.CrossWords, 2)
	s.Equal("AT", b.CrossWords[0].Word.Text)
	s.Equal(4, b.CrossWords[0].Score)
	s.Equal("TO", b.CrossWords[1].Word.Text)
	s.Equal(2, b.CrossWords[1].Score)
	s.Equal(0, b.Bonus)
	s.Equal(10, b.Total)
}

func (s *ServiceSuite) TestCrossWordsOnlyFromNewTiles() {
	s.Require().NoError(s.board.MakeMove(0, 0, "CAT", model.Right))
	s.Require().NoError(s.board.MakeMove(0, 1, "AT", model.Down))

	// Extending AT down to ATE only places E; the existing T's row word is not rescored
	b, err := s.service.Breakdown(s.board, s.word(0, 1, model.Down, "ATE"))
	s.Require().NoError(err)

	s.Equal(3, b.Primary)
	s.Empty(b.CrossWords)
	s.Equal(3, b.Total)
}

func (s *ServiceSuite) TestBonus() {
	service := New(model.Rules{BonusLength: 3, Bonus: 50})

	score, err := service.Score(s.board, s.word(4, 0, model.Right, "CAT"))
	s.Require().NoError(err)
	s.Equal(55, score)

	score, err = service.Score(s.board, s.word(4, 0, model.Right, "CATS"))
	s.Require().NoError(err)
	s.Equal(6, score)
}

func (s *ServiceSuite) TestBonusDisabled() {
	service := New(model.Rules{})

	score, err := service.Score(s.board, s.word(4, 0, model.Right, "CAT"))
	s.Require().NoError(err)
	s.Equal(5, score)
}

func (s *ServiceSuite) TestDefaultBonusLength() {
	b, err := model.NewBoard(15)
	s.Require().NoError(err)
	w, err := model.NewWord(0, 0, 15, model.Right, "ABSOLUTE")
	s.Require().NoError(err)

	score, err := s.service.Score(b, w)
	s.Require().NoError(err)

	// A1 B3 S1 O1 L1 U1 T1 E1
	s.Equal(10+50, score)
}

func (s *ServiceSuite) TestBonusIsNotMultiplied() {
	service := New(model.Rules{BonusLength: 3, Bonus: 50})

	// C3 A1 T1 with the triple word at (2,2)
	score, err := service.Score(s.board, s.word(2, 0, model.Right, "CAT"))
	s.Require().NoError(err)
	s.Equal(5*3+50, score)
}

func (s *ServiceSuite) TestBonusOnDefaultBoardPremiums() {
	b, err := model.NewBoard(model.DefaultBoardSize)
	s.Require().NoError(err)
	w, err := model.NewWord(0, 0, b.Size(), model.Right, "ABSOLUTE")
	s.Require().NoError(err)

	breakdown, err := s.service.Breakdown(b, w)
	s.Require().NoError(err)

	// A1 B3 S1 O1x2 L1 U1 T1 E1 = 11, quadruple word at (0,0), triple at (0,7)
	s.Equal(11*4*3, breakdown.Primary)
	s.Equal(50, breakdown.Bonus)
	s.Equal(182, breakdown.Total)
}

func (s *ServiceSuite) TestOffBoard() {
	_, err := s.service.Score(s.board, s.word(0, 3, model.Right, "CAT"))
	s.ErrorIs(err, model.ErrWordExceedsBoard)
}

func (s *ServiceSuite) TestInvalidCharacters() {
	_, err := s.service.Score(s.board, s.word(0, 0, model.Right, "c4t"))
	s.ErrorIs(err, model.ErrInvalidTileChar)
}

func (s *ServiceSuite) TestDefaultBoardHello() {
	b, err := model.NewBoard(model.DefaultBoardSize)
	s.Require().NoError(err)
	w, err := model.NewWord(11, 11, model.DefaultBoardSize, model.Right, "HELLO")
	s.Require().NoError(err)

	score, err := s.service.Score(b, w)
	s.Require().NoError(err)

	// Double letters under the H and the O
	s.Equal(13, score)
}
