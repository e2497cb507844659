package mappers

import (
	"accountsforge/internal/domain/expense"
	vo "accountsforge/internal/domain/expense/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
)

// ExpenseMapper handles the conversion between Expense domain entities and persistence models.
type ExpenseMapper interface {
	// ToModel converts an expense domain entity to a persistence model.
	ToModel(e *expense.Expense) *models.ExpenseModel

	// ToDomain converts an expense persistence model to a domain entity.
	ToDomain(model *models.ExpenseModel) (*expense.Expense, error)
}

// ExpenseMapperImpl is the concrete implementation of ExpenseMapper.
type ExpenseMapperImpl struct{}

// NewExpenseMapper creates a new ExpenseMapper.
func NewExpenseMapper() ExpenseMapper {
	return &ExpenseMapperImpl{}
}

func (m *ExpenseMapperImpl) ToModel(e *expense.Expense) *models.ExpenseModel {
	return &models.ExpenseModel{
		ID:          e.ID(),
		OwnerID:     e.OwnerID(),
		Amount:      e.Amount(),
		Category:    e.Category(),
		Description: e.Description(),
		Status:      e.Status().String(),
		ReviewerID:  e.ReviewerID(),
		ReviewedAt:  e.ReviewedAt(),
		AdminNote:   e.AdminNote(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func (m *ExpenseMapperImpl) ToDomain(model *models.ExpenseModel) (*expense.Expense, error) {
	status, err := vo.NewExpenseStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return expense.ReconstructExpense(
		model.ID,
		model.OwnerID,
		model.Amount,
		model.Category,
		model.Description,
		status,
		model.ReviewerID,
		model.ReviewedAt,
		model.AdminNote,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
