package sitelog

import (
	stderrs "errors"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var (
	settingsValidator     *validator.Validate
	settingsValidatorOnce sync.Once
)

func validateConfig(cfg *Settings) error {
	const op errors.Op = "sitelog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	settingsValidatorOnce.Do(func() {
		settingsValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	err := settingsValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrs.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	// e.g. "MinLevel (oneof)"
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return errors.New(op).Err(err).Msg(errMsgConfigInvalid + " Invalid: " + strings.Join(fields, ", ") + ".")
}
