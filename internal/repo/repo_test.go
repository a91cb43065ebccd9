package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridbill/internal/pg"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.CustomerRepo)
	assert.NotNil(t, repo.ReadingRepo)
	assert.NotNil(t, repo.TariffRepo)
	assert.NotNil(t, repo.BillRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.WorkOrderRepo)
	assert.NotNil(t, repo.ConnectionRepo)
	assert.NotNil(t, repo.ResetRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
