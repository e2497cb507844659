package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accountsforge/internal/domain/expense"
	vo "accountsforge/internal/domain/expense/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&models.ExpenseModel{})
	require.NoError(t, err)

	return gdb
}

func createTestExpense(t *testing.T, ownerID uint, amount int64, category string) *expense.Expense {
	e, err := expense.NewExpense(ownerID, decimal.NewFromInt(amount), category, "test expense")
	require.NoError(t, err)
	return e
}

func TestExpenseRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		e := createTestExpense(t, 1, 120, "travel")

		err := repo.Create(ctx, e)
		assert.NoError(t, err)
		assert.NotZero(t, e.ID())
	})

	t.Run("created expense round-trips", func(t *testing.T) {
		e := createTestExpense(t, 2, 50, "meals")

		err := repo.Create(ctx, e)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, e.ID())
		assert.NoError(t, err)
		assert.Equal(t, e.OwnerID(), found.OwnerID())
		assert.True(t, e.Amount().Equal(found.Amount()))
		assert.Equal(t, e.Category(), found.Category())
		assert.True(t, found.Status().IsPending())
	})
}

func TestExpenseRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	t.Run("approval persists reviewer fields", func(t *testing.T) {
		e := createTestExpense(t, 1, 200, "software")
		require.NoError(t, repo.Create(ctx, e))

		require.NoError(t, e.Approve(9, "looks fine"))
		err := repo.Update(ctx, e)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, e.ID())
		assert.NoError(t, err)
		assert.True(t, found.Status().IsApproved())
		require.NotNil(t, found.ReviewerID())
		assert.Equal(t, uint(9), *found.ReviewerID())
		assert.Equal(t, "looks fine", found.AdminNote())
	})

	t.Run("cleared note is written back", func(t *testing.T) {
		e := createTestExpense(t, 1, 75, "travel")
		require.NoError(t, repo.Create(ctx, e))

		require.NoError(t, e.UpdateDetails(decimal.NewFromInt(80), "travel", ""))
		err := repo.Update(ctx, e)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, e.ID())
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(80).Equal(found.Amount()))
		assert.Equal(t, "", found.Description())
	})
}

func TestExpenseRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	t.Run("missing expense returns domain error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, expense.ErrNotFound)
		assert.Nil(t, found)
	})
}

func TestExpenseRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	t.Run("delete existing expense", func(t *testing.T) {
		e := createTestExpense(t, 1, 30, "meals")
		require.NoError(t, repo.Create(ctx, e))

		err := repo.Delete(ctx, e.ID())
		assert.NoError(t, err)

		_, err = repo.GetByID(ctx, e.ID())
		assert.ErrorIs(t, err, expense.ErrNotFound)
	})

	t.Run("delete non-existent expense", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.ErrorIs(t, err, expense.ErrNotFound)
	})
}

func TestExpenseRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	e1 := createTestExpense(t, 1, 100, "travel")
	require.NoError(t, repo.Create(ctx, e1))
	e2 := createTestExpense(t, 2, 200, "meals")
	require.NoError(t, repo.Create(ctx, e2))
	e3 := createTestExpense(t, 1, 300, "travel")
	require.NoError(t, repo.Create(ctx, e3))
	require.NoError(t, e3.Approve(9, ""))
	require.NoError(t, repo.Update(ctx, e3))

	t.Run("list all", func(t *testing.T) {
		expenses, total, err := repo.List(ctx, expense.Filter{Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, expenses, 3)
	})

	t.Run("filter by owner", func(t *testing.T) {
		ownerID := uint(1)
		expenses, total, err := repo.List(ctx, expense.Filter{OwnerID: &ownerID, Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, expenses, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusApproved.String()
		expenses, total, err := repo.List(ctx, expense.Filter{Status: &status, Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, expenses, 1)
		assert.Equal(t, e3.ID(), expenses[0].ID())
	})

	t.Run("pagination", func(t *testing.T) {
		expenses, total, err := repo.List(ctx, expense.Filter{Page: 2, PageSize: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, expenses, 1)
	})
}

func TestExpenseRepository_SumAmountByStatus(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	ctx := context.Background()

	e1 := createTestExpense(t, 1, 100, "travel")
	require.NoError(t, repo.Create(ctx, e1))
	require.NoError(t, e1.Approve(9, ""))
	require.NoError(t, repo.Update(ctx, e1))

	e2 := createTestExpense(t, 2, 250, "meals")
	require.NoError(t, repo.Create(ctx, e2))
	require.NoError(t, e2.Approve(9, ""))
	require.NoError(t, repo.Update(ctx, e2))

	e3 := createTestExpense(t, 1, 999, "travel")
	require.NoError(t, repo.Create(ctx, e3))

	t.Run("sums only the requested status", func(t *testing.T) {
		total, err := repo.SumAmountByStatus(ctx, vo.StatusApproved.String(), nil, nil)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(350).Equal(total))
	})

	t.Run("no matching rows yields zero", func(t *testing.T) {
		total, err := repo.SumAmountByStatus(ctx, vo.StatusRejected.String(), nil, nil)
		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("period bounds are half-open", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		total, err := repo.SumAmountByStatus(ctx, vo.StatusApproved.String(), &future, nil)
		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestExpenseRepository_TransactionRollback(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewExpenseRepository(gdb)
	txManager := db.NewTransactionManager(gdb)
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		e := createTestExpense(t, 1, 60, "travel")

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, e); err != nil {
				return err
			}
			return assert.AnError
		})
		assert.Error(t, err)

		_, total, err := repo.List(ctx, expense.Filter{Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("commit on success", func(t *testing.T) {
		e := createTestExpense(t, 1, 60, "travel")

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, e)
		})
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, e.ID())
		assert.NoError(t, err)
		assert.Equal(t, e.ID(), found.ID())
	})
}
