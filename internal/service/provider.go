// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"pet_diary_server/internal/dao/minio"
	"pet_diary_server/internal/dao/mysql/repository"
	myredis "pet_diary_server/internal/dao/redis"
	"pet_diary_server/internal/service/disease"
	"pet_diary_server/internal/service/group"
	"pet_diary_server/internal/service/monitoring"
	"pet_diary_server/internal/service/notify"
	"pet_diary_server/internal/service/pet"
	"pet_diary_server/internal/service/record"
	"pet_diary_server/internal/service/recordfile"
	"pet_diary_server/internal/service/schedule"
	"pet_diary_server/internal/service/tag"
	"pet_diary_server/internal/service/user"
	"pet_diary_server/internal/service/validator"
)

// Services 聚合所有 Service 实例
// Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User       UserService       // 用户 Service
	Group      GroupService      // 家庭组 Service
	Pet        PetService        // 宠物 Service
	Tag        TagService        // 标签 Service
	Schedule   ScheduleService   // 日程 Service
	Disease    DiseaseService    // 疾病 Service
	Monitoring MonitoringService // 日常监测 Service
	Record     RecordService     // 日记 Service
	RecordFile RecordFileService // 日记附件 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合、缓存、对象存储和事件代理
//  2. 创建共享的实体校验器
//  3. 创建各个 Service 实例并聚合
//
// repos: Repository 层聚合实例
// cache: Redis 异步缓存服务
// store: MinIO 对象存储
// broker: 通知事件代理
// 返回: Services 聚合指针
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, store minio.ObjectStore, broker notify.EventBroker) *Services {
	v := validator.NewValidator(repos)
	feedCache := myredis.NewFeedCache(cache)

	return &Services{
		User:       user.NewUserService(repos, cache, v),
		Group:      group.NewGroupService(repos, v),
		Pet:        pet.NewPetService(repos, v),
		Tag:        tag.NewTagService(repos, v),
		Schedule:   schedule.NewScheduleService(repos, v),
		Disease:    disease.NewDiseaseService(repos, v),
		Monitoring: monitoring.NewMonitoringService(repos, v),
		Record:     record.NewRecordService(repos, v, feedCache, broker),
		RecordFile: recordfile.NewRecordFileService(repos, v, store),
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.User.Login() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository、Redis、MinIO 初始化之后
func InitServices(repos *repository.Repositories, cache myredis.AsyncCacheService, store minio.ObjectStore, broker notify.EventBroker) {
	Svc = NewServices(repos, cache, store, broker)
}
