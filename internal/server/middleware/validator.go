package middleware

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/util"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	commonTags := []string{
		"json",
		"param",
		"query",
		"header",
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range commonTags {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	// page_size accepts only the page sizes offered by the dashboard.
	validate.RegisterValidation("page_size", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return util.SliceIncludes(models.PageSizes, int(fl.Field().Int()))
		default:
			return false
		}
	})

	v := &Validator{
		validate: validate,
	}

	return v
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
