// Package handler 提供 HTTP 请求处理器
// 本文件实现统一响应信封和错误码到 HTTP 状态码的映射
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"pet_diary_server/pkg/errorx"
)

// ErrorBody 响应信封中的错误对象
type ErrorBody struct {
	Code    int `json:"code"`    // 业务错误码
	Message any `json:"message"` // 错误消息（校验错误时为字段 -> 消息的映射）
}

// ResponseData 统一响应信封
type ResponseData struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ResponseData{
		Success: true,
		Data:    data,
	})
}

// httpStatus 业务错误码映射到 HTTP 状态码
func httpStatus(code int) int {
	switch code {
	case errorx.CodeInvalidParam, errorx.CodeInvalidRequest,
		errorx.CodeInvalidFile, errorx.CodeWrongFileFormat:
		return http.StatusBadRequest
	case errorx.CodeUnauthorized, errorx.CodeInvalidPassword:
		return http.StatusUnauthorized
	case errorx.CodeInvalidPermission:
		return http.StatusForbidden
	case errorx.CodeNotFound, errorx.CodeUserNotExist:
		return http.StatusNotFound
	case errorx.CodeUserExist, errorx.CodeDuplicatedDiseaseName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError 通用错误处理方法
// 识别 errorx.CodeError 业务错误，其余错误收敛为服务繁忙
// 使用示例：
//
//	if err := service.Svc.Pet.DeletePet(petID, username); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(httpStatus(codeErr.Code), ResponseData{
			Success: false,
			Error:   &ErrorBody{Code: codeErr.Code, Message: codeErr.Msg},
		})
		return
	}

	// 非业务错误只记日志，不向客户端透出内部细节
	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ResponseData{
		Success: false,
		Error:   &ErrorBody{Code: errorx.ErrServerBusy.Code, Message: errorx.ErrServerBusy.Msg},
	})
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// 翻译后去除结构体名前缀
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, ResponseData{
			Success: false,
			Error:   &ErrorBody{Code: errorx.CodeInvalidParam, Message: translatedErrs},
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误）
	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, ResponseData{
		Success: false,
		Error:   &ErrorBody{Code: errorx.CodeInvalidParam, Message: errorx.ErrInvalidParam.Msg},
	})
}

// parseUintParam 解析路径中的数字 id，如 :petId
func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errorx.Newf(errorx.CodeInvalidParam, "路径参数 %s 不合法: %s", name, raw)
	}
	return uint(id), nil
}

// parseIntQuery 解析查询参数中的整数，缺省或非法时返回默认值
func parseIntQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
