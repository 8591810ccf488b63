package service

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 与 gin 的 binding 标签共用同一套规则
	v.SetTagName("binding")
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.Split(f.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// validateRequest 校验请求结构，返回可读的错误信息；通过时返回空串
func validateRequest(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s 不能为空", fe.Field())
	case "max":
		return fmt.Sprintf("%s 不能超过 %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s 不能小于 %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s 必须大于 %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s 必须大于等于 %s", fe.Field(), fe.Param())
	case "excludes":
		return fmt.Sprintf("%s 不能包含 %q", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s 不是有效的链接", fe.Field())
	default:
		return fmt.Sprintf("%s 校验失败 (%s)", fe.Field(), fe.Tag())
	}
}

// missingIDs 返回 requested 中不在 existing 里的 ID（去重，保持顺序）
func missingIDs(requested, existing []int) []int {
	var missing []int
	for _, id := range requested {
		if !slices.Contains(existing, id) && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
