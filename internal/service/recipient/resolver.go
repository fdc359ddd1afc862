package recipient

import (
	"context"
	"math"
	"strconv"
	"strings"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/repository"
)

// Resolver 把收件人选择条件解析成去重后的成员列表
//
//go:generate mockgen -source=./resolver.go -destination=./mocks/resolver.mock.go -package=recipientmocks Resolver
type Resolver interface {
	// Resolve 结果按目录主键顺序排列，每个外部编号只出现一次
	Resolve(ctx context.Context, spec domain.TargetSpec) ([]domain.Member, error)
}

type resolver struct {
	repo repository.MemberRepository
}

func NewResolver(repo repository.MemberRepository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, spec domain.TargetSpec) ([]domain.Member, error) {
	filter, err := BuildFilter(spec)
	if err != nil {
		return nil, err
	}
	members, err := r.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Dedupe(members), nil
}

// BuildFilter 根据选择条件构造目录查询，不访问存储
func BuildFilter(spec domain.TargetSpec) (domain.MemberFilter, error) {
	filter := domain.MemberFilter{ExcludeAdmins: !spec.IncludeAdmins}

	mode, ok := domain.ParseTargetMode(spec.Mode)
	if !ok {
		return domain.MemberFilter{}, errs.NewTargetError(spec.Mode, "不支持的收件人模式")
	}

	switch mode {
	case domain.TargetModeTier:
		tier, err := parseTier(spec.Tier)
		if err != nil {
			return domain.MemberFilter{}, errs.NewTargetError(spec.Mode, "层级必须是整数")
		}
		filter.Tier = &tier
	case domain.TargetModeList:
		ids := parseExternalIDs(spec.Recipients)
		if len(ids) == 0 {
			return domain.MemberFilter{}, errs.NewTargetError(spec.Mode, "没有有效的收件人编号")
		}
		filter.ExternalIDs = ids
	case domain.TargetModeAll:
	}
	return filter, nil
}

// parseTier 接受 "2"、"2.0" 这类整数值
func parseTier(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f > math.MaxInt32 || f < math.MinInt32 {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

// parseExternalIDs 去空白、去重，丢弃非数字编号，保留首次出现的顺序
func parseExternalIDs(raw []string) []uint64 {
	seen := make(map[uint64]struct{}, len(raw))
	res := make([]uint64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseUint(domain.NormalizeIdentifier(s), 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

// Dedupe 按规范化的外部编号去重，先出现的保留
func Dedupe(members []domain.Member) []domain.Member {
	seen := make(map[string]struct{}, len(members))
	res := make([]domain.Member, 0, len(members))
	for i := range members {
		m := members[i]
		m.ExternalID = domain.NormalizeIdentifier(m.ExternalID)
		if m.ExternalID == "" {
			continue
		}
		if _, ok := seen[m.ExternalID]; ok {
			continue
		}
		seen[m.ExternalID] = struct{}{}
		res = append(res, m)
	}
	return res
}
