// Package risk scores the risk tolerance questionnaire
package risk

import (
	"errors"

	"github.com/findosh/advisor/internal/models"
	"github.com/shopspring/decimal"
)

// Option is one selectable answer with its score
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"-"`
}

// Question is a single questionnaire entry; options are ordered
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// MaxScore returns the highest score any option of the question can earn
func (q Question) MaxScore() int {
	best := 0
	for i, o := range q.Options {
		if i == 0 || o.Score > best {
			best = o.Score
		}
	}
	return best
}

// Questionnaire is a fixed ordered set of questions
type Questionnaire struct {
	Questions []Question `json:"questions"`
}

// Assessment is the scored result of a completed questionnaire
type Assessment struct {
	TotalScore int                 `json:"total_score"`
	MaxScore   int                 `json:"max_score"`
	Score      decimal.Decimal     `json:"score"` // normalized 0-1
	Category   models.RiskCategory `json:"category"`
}

// DefaultQuestionnaire returns the standard four-question risk assessment
func DefaultQuestionnaire() *Questionnaire {
	return &Questionnaire{
		Questions: []Question{
			{
				Prompt: "How would you react if your portfolio lost 20% of its value in a month?",
				Options: []Option{
					{"Sell everything immediately", 1},
					{"Sell some investments to cut losses", 3},
					{"Do nothing and wait for recovery", 5},
					{"Buy more at the lower prices", 10},
				},
			},
			{
				Prompt: "How long do you keep your money invested?",
				Options: []Option{
					{"Less than 2 years", 1},
					{"2-5 years", 4},
					{"5-10 years", 7},
					{"More than 10 years", 10},
				},
			},
			{
				Prompt: "What is your primary investment goal?",
				Options: []Option{
					{"Preserve capital", 1},
					{"Generate income", 4},
					{"Balanced growth and income", 7},
					{"Maximize growth", 10},
				},
			},
			{
				Prompt: "How much financial knowledge do you have?",
				Options: []Option{
					{"Very little", 2},
					{"Basic understanding", 5},
					{"Good knowledge", 8},
					{"Advanced/Professional", 10},
				},
			},
		},
	}
}

// Score computes the normalized risk score for one selected option index per question
func (q *Questionnaire) Score(answers []int) (result Assessment, err error) {
	defer models.RecoverStage(models.StageRisk, &err)

	if q == nil || len(q.Questions) == 0 {
		return Assessment{}, models.InvalidInput("no risk questions supplied")
	}
	if len(answers) != len(q.Questions) {
		return Assessment{}, models.InvalidInput("expected %d answers, got %d", len(q.Questions), len(answers))
	}

	total, maxTotal := 0, 0
	for i, question := range q.Questions {
		if len(question.Options) == 0 {
			return Assessment{}, models.InvalidInput("question %d has no options", i+1)
		}
		choice := answers[i]
		if choice < 0 || choice >= len(question.Options) {
			return Assessment{}, models.InvalidInput("answer %d to question %d is out of range", choice, i+1)
		}
		total += question.Options[choice].Score
		maxTotal += question.MaxScore()
	}

	if maxTotal <= 0 {
		return Assessment{}, &models.ComputationError{
			Stage: models.StageRisk,
			Err:   errors.New("questionnaire maximum score is zero"),
		}
	}

	score := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(maxTotal)))

	return Assessment{
		TotalScore: total,
		MaxScore:   maxTotal,
		Score:      score,
		Category:   models.CategoryForScore(score),
	}, nil
}
