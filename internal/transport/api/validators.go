package api

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalFieldPair достает значение поля и параметр тега как decimal. Поля decimal.Decimal приходят сюда
// строкой, см. decimalTypeFunc.
func decimalFieldPair(fl validator.FieldLevel) (decimal.Decimal, decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	value, valueErr := decimal.NewFromString(str)
	bound, boundErr := decimal.NewFromString(fl.Param())
	if valueErr != nil || boundErr != nil {
		return decimal.Zero, decimal.Zero, false
	}
	return value, bound, true
}

// validateDecimalGt decimal_gt=N: значение строго больше N.
func validateDecimalGt(fl validator.FieldLevel) bool {
	value, bound, ok := decimalFieldPair(fl)
	return ok && value.GreaterThan(bound)
}

// validateDecimalGte decimal_gte=N: значение не меньше N.
func validateDecimalGte(fl validator.FieldLevel) bool {
	value, bound, ok := decimalFieldPair(fl)
	return ok && value.GreaterThanOrEqual(bound)
}

// validateDecimalLte decimal_lte=N: значение не больше N.
func validateDecimalLte(fl validator.FieldLevel) bool {
	value, bound, ok := decimalFieldPair(fl)
	return ok && value.LessThanOrEqual(bound)
}

// validateDecimalScale decimal_scale=N: не больше N знаков после запятой.
func validateDecimalScale(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	value, err := decimal.NewFromString(str)
	if err != nil {
		return false
	}
	return value.Equal(value.Truncate(int32(places)))
}

// decimalTypeFunc валидатор не проверяет тэги полей-структур, поэтому decimal.Decimal валидируется как строка.
func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// fieldName имя поля в ошибках валидации: ключ из json или form тэга, иначе имя поля структуры.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator registration: unexpected validator engine")
	}
	v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})
	v.RegisterTagNameFunc(fieldName)

	validations := map[string]validator.Func{
		"max_bytes":     validateMaxBytes,
		"decimal_gt":    validateDecimalGt,
		"decimal_gte":   validateDecimalGte,
		"decimal_lte":   validateDecimalLte,
		"decimal_scale": validateDecimalScale,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
