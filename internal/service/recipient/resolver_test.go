package recipient

import (
	"context"
	"errors"
	"slices"
	"testing"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	repomocks "gitee.com/flycash/communication-platform/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// directory 测试用的成员目录，包含管理员、没有编号的成员和重复编号
var directory = []domain.Member{
	{ID: 1, ExternalID: "1", FirstName: "Admin", Tier: domain.AdminTier},
	{ID: 2, ExternalID: "7", FirstName: "Ana", Tier: 2},
	{ID: 3, ExternalID: "9", FirstName: "Beto", Tier: 3},
	{ID: 4, ExternalID: "", FirstName: "Sin", Tier: 2},
	{ID: 5, ExternalID: "12", FirstName: "Carla", Tier: 2},
	{ID: 6, ExternalID: " 12 ", FirstName: "Duplicado", Tier: 2},
}

func fakeDirectory(members []domain.Member) func(context.Context, domain.MemberFilter) ([]domain.Member, error) {
	return func(_ context.Context, filter domain.MemberFilter) ([]domain.Member, error) {
		return filterMembers(members, filter), nil
	}
}

func filterMembers(members []domain.Member, filter domain.MemberFilter) []domain.Member {
	res := make([]domain.Member, 0, len(members))
	for _, m := range members {
		id := domain.NormalizeIdentifier(m.ExternalID)
		if id == "" {
			continue
		}
		if filter.ExcludeAdmins && m.Tier == domain.AdminTier {
			continue
		}
		if filter.Tier != nil && m.Tier != *filter.Tier {
			continue
		}
		if len(filter.ExternalIDs) > 0 && !slices.ContainsFunc(filter.ExternalIDs, func(v uint64) bool {
			return domain.FormatExternalID(v) == id
		}) {
			continue
		}
		res = append(res, m)
	}
	return res
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		spec    domain.TargetSpec
		wantIDs []string
		wantErr error
	}{
		{
			name:    "全部成员默认排除管理员并去重",
			spec:    domain.TargetSpec{Mode: "todos"},
			wantIDs: []string{"7", "9", "12"},
		},
		{
			name:    "全部成员包含管理员",
			spec:    domain.TargetSpec{Mode: "all", IncludeAdmins: true},
			wantIDs: []string{"1", "7", "9", "12"},
		},
		{
			name:    "按层级",
			spec:    domain.TargetSpec{Mode: "nivel", Tier: "2"},
			wantIDs: []string{"7", "12"},
		},
		{
			name:    "层级可以写成 2.0",
			spec:    domain.TargetSpec{Mode: "tier", Tier: "2.0"},
			wantIDs: []string{"7", "12"},
		},
		{
			name:    "按层级选管理员但没有打开开关",
			spec:    domain.TargetSpec{Mode: "tier", Tier: "1"},
			wantIDs: []string{},
		},
		{
			name:    "指定列表去重并丢弃非法编号",
			spec:    domain.TargetSpec{Mode: "seleccionados", Recipients: []string{"7", "7", "9", "abc"}},
			wantIDs: []string{"7", "9"},
		},
		{
			name:    "指定列表里只有一个合法编号",
			spec:    domain.TargetSpec{Mode: "list", Recipients: []string{" 7 ", "7", "abc", ""}},
			wantIDs: []string{"7"},
		},
		{
			name:    "层级不是整数",
			spec:    domain.TargetSpec{Mode: "tier", Tier: "2.5"},
			wantErr: errs.ErrInvalidTarget,
		},
		{
			name:    "层级为空",
			spec:    domain.TargetSpec{Mode: "tier"},
			wantErr: errs.ErrInvalidTarget,
		},
		{
			name:    "列表里没有合法编号",
			spec:    domain.TargetSpec{Mode: "list", Recipients: []string{"abc", "-1"}},
			wantErr: errs.ErrInvalidTarget,
		},
		{
			name:    "未知模式",
			spec:    domain.TargetSpec{Mode: "broadcast"},
			wantErr: errs.ErrInvalidTarget,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockMemberRepository(ctrl)
			if tc.wantErr == nil {
				repo.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(fakeDirectory(directory))
			}

			members, err := NewResolver(repo).Resolve(t.Context(), tc.spec)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			ids := make([]string, 0, len(members))
			for _, m := range members {
				ids = append(ids, m.ExternalID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestResolver_ListExcludesAdminsByDefault(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockMemberRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(fakeDirectory([]domain.Member{
		{ID: 1, ExternalID: "7", Tier: 3},
		{ID: 2, ExternalID: "9", Tier: domain.AdminTier},
	}))

	members, err := NewResolver(repo).Resolve(t.Context(), domain.TargetSpec{
		Mode:       "list",
		Recipients: []string{"7", "7", "9", "abc"},
	})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "7", members[0].ExternalID)
}

func TestResolver_UnknownModeCarriesMode(t *testing.T) {
	t.Parallel()

	_, err := BuildFilter(domain.TargetSpec{Mode: "broadcast"})
	var targetErr *errs.TargetError
	require.True(t, errors.As(err, &targetErr))
	assert.Equal(t, "broadcast", targetErr.Mode)
}

func TestResolver_RepositoryError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockMemberRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("mock db error"))

	_, err := NewResolver(repo).Resolve(t.Context(), domain.TargetSpec{Mode: "all"})
	assert.Error(t, err)
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	filter, err := BuildFilter(domain.TargetSpec{Mode: "list", Recipients: []string{"9", "7", "9"}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{9, 7}, filter.ExternalIDs)
	assert.True(t, filter.ExcludeAdmins)
	assert.Nil(t, filter.Tier)

	filter, err = BuildFilter(domain.TargetSpec{Mode: "nivel", Tier: "3", IncludeAdmins: true})
	require.NoError(t, err)
	require.NotNil(t, filter.Tier)
	assert.Equal(t, 3, *filter.Tier)
	assert.False(t, filter.ExcludeAdmins)
}
