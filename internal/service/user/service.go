// Package user 实现用户注册、登录与令牌管理
package user

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"pet_diary_server/internal/dao/mysql/repository"
	myredis "pet_diary_server/internal/dao/redis"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/constants"
	"pet_diary_server/pkg/enum/user/user_role_enum"
	"pet_diary_server/pkg/errorx"
	myjwt "pet_diary_server/pkg/util/jwt"
)

// userService 用户业务逻辑实现
// 通过构造函数注入 Repository 和 Cache 依赖
type userService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	validator *validator.Validator
}

// NewUserService 构造函数，注入所有依赖
func NewUserService(repos *repository.Repositories, cache myredis.AsyncCacheService, v *validator.Validator) *userService {
	return &userService{
		repos:     repos,
		cache:     cache,
		validator: v,
	}
}

// refreshTokenKey Refresh Token ID 的 Redis 键
func refreshTokenKey(username string) string {
	return "user_token:" + username
}

// userInfoKey 用户信息缓存键
func userInfoKey(username string) string {
	return "user_info_" + username
}

// Join 用户注册
// 用户名已存在返回 CodeUserExist，密码由模型的 BeforeSave Hook 加密
func (u *userService) Join(req request.JoinRequest) (*respond.JoinRespond, error) {
	_, err := u.repos.User.FindByUsername(req.Username)
	if err == nil {
		return nil, errorx.Newf(errorx.CodeUserExist, "用户名 %s 已被占用", req.Username)
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}

	user := model.User{
		Username:    req.Username,
		RawPassword: req.Password,
		Email:       req.Email,
		Role:        user_role_enum.NORMAL,
	}
	if err := u.repos.User.Create(&user); err != nil {
		zap.L().Error("创建用户失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.JoinRespond{
		UserId:   user.ID,
		Username: user.Username,
	}, nil
}

// Login 密码登录
// 成功后生成令牌对，Refresh Token ID 存入 Redis 供刷新时比对
// 返回值中的 refreshToken 由 Handler 写入安全 Cookie
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, string, error) {
	user, err := u.validator.GetUserByUsername(req.Username)
	if err != nil {
		return nil, "", err
	}
	if !user.CheckPassword(req.Password) {
		return nil, "", errorx.New(errorx.CodeInvalidPassword, "密码错误")
	}

	accessToken, err := myjwt.CreateAccessToken(user.Username, user.Role)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := myjwt.CreateRefreshToken(user.Username, user.Role)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}

	// 同一用户只保留最新的 Refresh Token
	if err := u.cache.Set(context.Background(), refreshTokenKey(user.Username), tokenID,
		constants.REFRESH_TOKEN_TTL); err != nil {
		zap.L().Error("存储 Refresh Token ID 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}

	rsp := &respond.LoginRespond{
		UserId:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: accessToken,
	}
	return rsp, refreshToken, nil
}

// GenerateNewToken 用 Refresh Token 换发新令牌对
// 校验 Token 本身及 Redis 中固定的 Token ID，防止已轮换的旧 Token 复用
func (u *userService) GenerateNewToken(refreshToken string) (*respond.NewTokenRespond, string, error) {
	claims, err := myjwt.ParseToken(refreshToken)
	if err != nil {
		return nil, "", err
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, "", errorx.New(errorx.CodeUnauthorized, "无效的 Token")
	}

	storedID, err := u.cache.GetOrError(context.Background(), refreshTokenKey(claims.Username))
	if err != nil || storedID != claims.TokenID {
		return nil, "", errorx.New(errorx.CodeUnauthorized, "无效的 Token")
	}

	accessToken, err := myjwt.CreateAccessToken(claims.Username, claims.Role)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}
	newRefreshToken, tokenID, err := myjwt.CreateRefreshToken(claims.Username, claims.Role)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}
	if err := u.cache.Set(context.Background(), refreshTokenKey(claims.Username), tokenID,
		constants.REFRESH_TOKEN_TTL); err != nil {
		zap.L().Error("存储 Refresh Token ID 失败", zap.Error(err))
		return nil, "", errorx.ErrServerBusy
	}

	return &respond.NewTokenRespond{AccessToken: accessToken}, newRefreshToken, nil
}

// GetUser 获取用户信息
// 先查缓存，未命中查数据库并异步回写
func (u *userService) GetUser(username string) (*respond.GetUserInfoRespond, error) {
	cacheKey := userInfoKey(username)

	// 1. 尝试从缓存获取 (Happy Path)
	rspString, err := u.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var rsp respond.GetUserInfoRespond
		if err := json.Unmarshal([]byte(rspString), &rsp); err == nil {
			return &rsp, nil
		}
		zap.L().Error("Unmarshal user info cache error", zap.Error(err))
	} else if err != nil {
		// Redis 连接错误等非"Key不存在"的错误，记录日志但不中断业务
		zap.L().Error("Redis get error", zap.Error(err))
	}

	// 2. 缓存未命中 或 缓存出错 -> 查询数据库
	user, err := u.validator.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	rsp := &respond.GetUserInfoRespond{
		UserId:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	// 3. 异步回写缓存
	u.cache.SubmitTask(func() {
		if data, err := json.Marshal(rsp); err == nil {
			if err := u.cache.Set(context.Background(), cacheKey, string(data), constants.USER_INFO_CACHE_TTL); err != nil {
				zap.L().Error("回写用户信息缓存失败", zap.Error(err))
			}
		}
	})

	return rsp, nil
}
