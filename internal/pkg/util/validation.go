package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors 将校验错误转换为 字段名->提示语 的映射，供表单回显
func FieldErrors(err error) map[string]string {
	result := make(map[string]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		result["form"] = "表单内容不合法"
		return result
	}

	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			result[fe.Field()] = "该字段不能为空"
		case "max":
			result[fe.Field()] = fmt.Sprintf("长度不能超过 %s 个字符", fe.Param())
		case "min":
			result[fe.Field()] = fmt.Sprintf("长度不能少于 %s 个字符", fe.Param())
		case "email":
			result[fe.Field()] = "邮箱格式不正确"
		default:
			result[fe.Field()] = "该字段不合法"
		}
	}

	return result
}

// PtrUint64 表单中 0 表示未选择
func PtrUint64(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}
