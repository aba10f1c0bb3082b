// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"pet_diary_server/internal/service"
	"pet_diary_server/internal/service/notify"
)

// Handlers 聚合所有 Handler 实例
// 作为依赖注入的入口，Router 层通过此结构访问各个 Handler
type Handlers struct {
	User       *UserHandler
	Group      *GroupHandler
	Pet        *PetHandler
	Tag        *TagHandler
	Schedule   *ScheduleHandler
	Disease    *DiseaseHandler
	Monitoring *MonitoringHandler
	Record     *RecordHandler
	Ws         *WsHandler
}

// NewHandlers 创建并注入所有 Handler 实例
// svc: Service 层聚合实例
// gateway: 通知推送的 WebSocket 网关
func NewHandlers(svc *service.Services, gateway *notify.Gateway) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Group:      NewGroupHandler(svc.Group),
		Pet:        NewPetHandler(svc.Pet),
		Tag:        NewTagHandler(svc.Tag),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Disease:    NewDiseaseHandler(svc.Disease),
		Monitoring: NewMonitoringHandler(svc.Monitoring),
		Record:     NewRecordHandler(svc.Record, svc.RecordFile),
		Ws:         NewWsHandler(gateway),
	}
}
