package store

import (
	"auctionary/internal/models"
)

// QuestionRow is the public shape of a question on an item listing.
type QuestionRow struct {
	QuestionID   int64   `gorm:"column:question_id" json:"question_id"`
	QuestionText string  `gorm:"column:question_text" json:"question_text"`
	AnswerText   *string `gorm:"column:answer_text" json:"answer_text"`
}

// QuestionContext carries the question plus the owning item's creator,
// which is what the answer authorization check needs.
type QuestionContext struct {
	QuestionID int64
	ItemID     int64
	AskedBy    int64
	CreatorID  int64
}

// CreateQuestion inserts a question with a null answer and fills in the id
func (s *Store) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

// QuestionWithCreator returns a question joined with its item's creator,
// or (nil, nil) if the question does not exist
func (s *Store) QuestionWithCreator(questionID int64) (*QuestionContext, error) {
	var ctx QuestionContext
	err := s.db.Table("questions q").
		Select("q.question_id, q.item_id, q.asked_by, i.creator_id").
		Joins("JOIN items i ON i.item_id = q.item_id").
		Where("q.question_id = ?", questionID).
		Take(&ctx).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ctx, nil
}

// AnswerQuestion sets the answer text. Re-answering overwrites.
func (s *Store) AnswerQuestion(questionID int64, answer string) error {
	return s.db.Model(&models.Question{}).
		Where("question_id = ?", questionID).
		Update("answer", answer).Error
}

// QuestionsForItem lists an item's questions newest first, answers included
// (null until the creator answers)
func (s *Store) QuestionsForItem(itemID int64) ([]QuestionRow, error) {
	var rows []QuestionRow
	err := s.db.Table("questions").
		Select("question_id, question AS question_text, answer AS answer_text").
		Where("item_id = ?", itemID).
		Order("question_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []QuestionRow{}
	}
	return rows, nil
}
