package sequence

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// NameMaxLen 计数器名称的最大长度，和 counters.name 列宽一致
const NameMaxLen = 191

// Generator 具名单调序列，第一次取值为 1
//
//go:generate mockgen -source=./generator.go -destination=./mocks/generator.mock.go -package=sequencemocks Generator
type Generator interface {
	Next(ctx context.Context, name string) (uint64, error)
}

type generator struct {
	repo   repository.SequenceRepository
	logger *elog.Component
}

func NewGenerator(repo repository.SequenceRepository) Generator {
	return &generator{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (g *generator) Next(ctx context.Context, name string) (uint64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: 序列名称不能为空", errs.ErrValidation)
	}
	if utf8.RuneCountInString(name) > NameMaxLen {
		return 0, fmt.Errorf("%w: 序列名称超过 %d 个字符", errs.ErrValidation, NameMaxLen)
	}

	seq, err := g.repo.Next(ctx, name)
	if err != nil {
		g.logger.Error("获取序列号失败", elog.String("name", name), elog.FieldErr(err))
		return 0, fmt.Errorf("%w: name=%s, %w", errs.ErrSequence, name, err)
	}
	return seq, nil
}
