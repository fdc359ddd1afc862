package repository

import (
	"context"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// MemberRepository 成员目录
//
//go:generate mockgen -source=./member.go -destination=./mocks/member.mock.go -package=repomocks MemberRepository
type MemberRepository interface {
	// Find 按条件查找成员，外部编号为空的成员不会出现在结果里
	Find(ctx context.Context, filter domain.MemberFilter) ([]domain.Member, error)
	// FindByExternalIDs 按外部编号批量查找，不做层级过滤
	FindByExternalIDs(ctx context.Context, ids []uint64) ([]domain.Member, error)
}

type memberRepository struct {
	dao dao.MemberDAO
}

func NewMemberRepository(d dao.MemberDAO) MemberRepository {
	return &memberRepository{dao: d}
}

func (r *memberRepository) Find(ctx context.Context, filter domain.MemberFilter) ([]domain.Member, error) {
	members, err := r.dao.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return slice.Map(members, func(_ int, src dao.Member) domain.Member {
		return r.toDomain(src)
	}), nil
}

func (r *memberRepository) FindByExternalIDs(ctx context.Context, ids []uint64) ([]domain.Member, error) {
	// 空列表在 DAO 里表示不限编号
	if len(ids) == 0 {
		return nil, nil
	}
	return r.Find(ctx, domain.MemberFilter{ExternalIDs: ids})
}

func (r *memberRepository) toDomain(m dao.Member) domain.Member {
	res := domain.Member{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Tier:         m.Tier,
		Email:        m.Email.String,
		Organization: m.Organization,
	}
	if m.ExternalID.Valid {
		res.ExternalID = domain.FormatExternalID(uint64(m.ExternalID.Int64))
	}
	return res
}
