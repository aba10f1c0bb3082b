// Package group 实现家庭组的创建、成员邀请与查询
package group

import (
	"go.uber.org/zap"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
)

// 组内角色
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// groupService 家庭组业务逻辑实现
type groupService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewGroupService 构造函数，注入所有依赖
func NewGroupService(repos *repository.Repositories, v *validator.Validator) *groupService {
	return &groupService{
		repos:     repos,
		validator: v,
	}
}

// CreateGroup 创建家庭组
// 组记录与创建者的 owner 成员记录在同一事务内写入
func (g *groupService) CreateGroup(req request.CreateGroupRequest, username string) (*respond.GroupRespond, error) {
	user, err := g.validator.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	group := model.Group{
		Name:    req.Name,
		OwnerID: user.ID,
	}
	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Group.Create(&group); err != nil {
			zap.L().Error("创建家庭组失败", zap.Error(err))
			return errorx.ErrServerBusy
		}
		member := model.UserGroup{
			UserID:      user.ID,
			GroupID:     group.ID,
			RoleInGroup: RoleOwner,
		}
		if err := txRepos.UserGroup.Create(&member); err != nil {
			zap.L().Error("创建组成员失败", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &respond.GroupRespond{
		GroupId:     group.ID,
		Name:        group.Name,
		OwnerId:     group.OwnerID,
		RoleInGroup: RoleOwner,
	}, nil
}

// InviteMember 邀请用户加入家庭组
// 邀请人必须是组成员，被邀请人重复加入返回 CodeInvalidRequest
func (g *groupService) InviteMember(groupID uint, req request.InviteMemberRequest, username string) error {
	if _, err := g.validator.GetGroupByID(groupID); err != nil {
		return err
	}
	if _, err := g.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return err
	}

	invitee, err := g.validator.GetUserByUsername(req.Username)
	if err != nil {
		return err
	}

	exists, err := g.repos.UserGroup.ExistsByGroupAndUser(groupID, invitee.ID)
	if err != nil {
		return err
	}
	if exists {
		return errorx.Newf(errorx.CodeInvalidRequest, "用户 %s 已是该组成员", req.Username)
	}

	role := req.RoleInGroup
	if role == "" {
		role = RoleMember
	}
	member := model.UserGroup{
		UserID:      invitee.ID,
		GroupID:     groupID,
		RoleInGroup: role,
	}
	if err := g.repos.UserGroup.Create(&member); err != nil {
		zap.L().Error("创建组成员失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetMyGroups 获取当前用户加入的所有家庭组
func (g *groupService) GetMyGroups(username string) ([]respond.GroupRespond, error) {
	user, err := g.validator.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	memberships, err := g.repos.UserGroup.FindByUserID(user.ID)
	if err != nil {
		zap.L().Error("查询用户所在组失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 使用 make 初始化 len=0，确保序列化后是 [] 而不是 null
	groups := make([]respond.GroupRespond, 0, len(memberships))
	for _, m := range memberships {
		group, err := g.repos.Group.FindByID(m.GroupID)
		if err != nil {
			// 组可能已被删除，跳过失效的成员关系
			if errorx.IsNotFound(err) {
				continue
			}
			zap.L().Error("查询家庭组失败", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		groups = append(groups, respond.GroupRespond{
			GroupId:     group.ID,
			Name:        group.Name,
			OwnerId:     group.OwnerID,
			RoleInGroup: m.RoleInGroup,
		})
	}
	return groups, nil
}

// GetMembers 获取家庭组成员列表
// 仅组成员可见
func (g *groupService) GetMembers(groupID uint, username string) ([]respond.MemberRespond, error) {
	if _, err := g.validator.GetGroupByID(groupID); err != nil {
		return nil, err
	}
	if _, err := g.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return nil, err
	}

	members, err := g.repos.UserGroup.FindMembersWithUser(groupID)
	if err != nil {
		zap.L().Error("查询组成员失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.MemberRespond, 0, len(members))
	for _, m := range members {
		rsp = append(rsp, respond.MemberRespond{
			UserId:      m.UserID,
			Username:    m.Username,
			Email:       m.Email,
			RoleInGroup: m.RoleInGroup,
		})
	}
	return rsp, nil
}
