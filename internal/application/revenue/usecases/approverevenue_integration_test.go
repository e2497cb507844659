package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accountsforge/internal/domain/revenue"
	vo "accountsforge/internal/domain/revenue/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/infrastructure/repository"
	"accountsforge/internal/shared/db"
)

type approvalFixture struct {
	gdb            *gorm.DB
	revenueRepo    *repository.RevenueRepository
	commissionRepo *repository.CommissionRepository
	useCase        *ApproveRevenueUseCase
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection keeps every session on the same in-memory database
	// and lets concurrent transactions serialize instead of erroring.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = gdb.AutoMigrate(&models.RevenueModel{}, &models.CommissionRecordModel{}, &models.NotificationModel{})
	require.NoError(t, err)

	revenueRepo := repository.NewRevenueRepository(gdb)
	commissionRepo := repository.NewCommissionRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)

	return &approvalFixture{
		gdb:            gdb,
		revenueRepo:    revenueRepo,
		commissionRepo: commissionRepo,
		useCase: NewApproveRevenueUseCase(
			revenueRepo,
			commissionRepo,
			notificationRepo,
			db.NewTransactionManager(gdb),
			newTestMailer(),
			&mockLogger{},
		),
	}
}

func (f *approvalFixture) createPendingRevenue(t *testing.T, amount, rate string) *revenue.Revenue {
	t.Helper()
	commissionRate, err := vo.NewCommissionRate(decimal.RequireFromString(rate))
	require.NoError(t, err)

	r, err := revenue.NewRevenue(2, decimal.RequireFromString(amount), "Acme Corp", "INV-100", commissionRate)
	require.NoError(t, err)
	require.NoError(t, f.revenueRepo.Create(context.Background(), r))
	return r
}

func (f *approvalFixture) commissionCount(t *testing.T, revenueID uint) int64 {
	t.Helper()
	var count int64
	err := f.gdb.Model(&models.CommissionRecordModel{}).Where("revenue_id = ?", revenueID).Count(&count).Error
	require.NoError(t, err)
	return count
}

// Two admins approving the same pending revenue at the same time must end
// with exactly one commission record and one approved revenue, whichever
// request wins the race.
func TestApproveRevenueUseCase_SimultaneousApprovals(t *testing.T) {
	f := newApprovalFixture(t)
	r := f.createPendingRevenue(t, "1000", "5")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.useCase.Execute(context.Background(), ApproveRevenueCommand{
				Actor:     adminActor,
				RevenueID: r.ID(),
			})
		}(i)
	}
	wg.Wait()

	// The loser sees an already-approved revenue and no-ops.
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])

	assert.Equal(t, int64(1), f.commissionCount(t, r.ID()))

	stored, err := f.revenueRepo.GetByID(context.Background(), r.ID())
	require.NoError(t, err)
	assert.True(t, stored.Status().IsApproved())

	commission, err := f.commissionRepo.GetByRevenueID(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, "50.00", commission.Amount().StringFixed(2))
}

// The unique index on revenue_id is the store-level backstop for approvals
// that race past the status check.
func TestCommissionRepository_SecondInsertRejected(t *testing.T) {
	f := newApprovalFixture(t)
	r := f.createPendingRevenue(t, "1000", "5")

	_, err := f.useCase.Execute(context.Background(), ApproveRevenueCommand{
		Actor:     adminActor,
		RevenueID: r.ID(),
	})
	require.NoError(t, err)

	approved, err := f.revenueRepo.GetByID(context.Background(), r.ID())
	require.NoError(t, err)

	dup, err := revenue.NewCommissionRecord(approved)
	require.NoError(t, err)

	err = f.commissionRepo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, revenue.ErrDuplicateCommission)
	assert.Equal(t, int64(1), f.commissionCount(t, r.ID()))
}

// When a duplicate insert aborts the transaction, the status write in the
// same transaction must roll back with it.
func TestApproveRevenueUseCase_DuplicateInsertRollsBackStatus(t *testing.T) {
	f := newApprovalFixture(t)
	txManager := db.NewTransactionManager(f.gdb)

	first := f.createPendingRevenue(t, "1000", "5")
	_, err := f.useCase.Execute(context.Background(), ApproveRevenueCommand{
		Actor:     adminActor,
		RevenueID: first.ID(),
	})
	require.NoError(t, err)

	approvedFirst, err := f.revenueRepo.GetByID(context.Background(), first.ID())
	require.NoError(t, err)

	second := f.createPendingRevenue(t, "400", "10")

	err = txManager.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		r, err := f.revenueRepo.GetByID(txCtx, second.ID())
		if err != nil {
			return err
		}
		if err := r.Approve(adminActor.ProfileID, ""); err != nil {
			return err
		}
		if err := f.revenueRepo.Update(txCtx, r); err != nil {
			return err
		}

		dup, err := revenue.NewCommissionRecord(approvedFirst)
		if err != nil {
			return err
		}
		return f.commissionRepo.Create(txCtx, dup)
	})
	require.ErrorIs(t, err, revenue.ErrDuplicateCommission)

	stored, err := f.revenueRepo.GetByID(context.Background(), second.ID())
	require.NoError(t, err)
	assert.True(t, stored.Status().IsPending(), "status write must roll back with the failed insert")
	assert.Equal(t, int64(1), f.commissionCount(t, first.ID()))
}
