package repository

import (
	"context"

	"gitee.com/flycash/communication-platform/internal/repository/dao"
)

// SequenceRepository 具名单调序列
//
//go:generate mockgen -source=./sequence.go -destination=./mocks/sequence.mock.go -package=repomocks SequenceRepository
type SequenceRepository interface {
	Next(ctx context.Context, name string) (uint64, error)
}

type sequenceRepository struct {
	dao dao.CounterDAO
}

func NewSequenceRepository(d dao.CounterDAO) SequenceRepository {
	return &sequenceRepository{dao: d}
}

func (r *sequenceRepository) Next(ctx context.Context, name string) (uint64, error) {
	return r.dao.Incr(ctx, name)
}
