package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/metroplanner/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

// requestValidator validates request structs and renders failures in english.
type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newRequestValidator() *requestValidator {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &requestValidator{validate: validate, trans: trans}
}

func (rv *requestValidator) Struct(s interface{}) error {
	err := rv.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	vv := translateError(verrs, rv.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(verrs validator.ValidationErrors, trans ut.Translator) (errs []error) {
	for _, e := range verrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func newErrorResponse(status int, message string) errorResponse {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message
	return resp
}

type errorResponder struct {
	log *zap.Logger
}

func (er errorResponder) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := writeJSON(w, status, newErrorResponse(status, message), nil); err != nil {
		er.log.Error("write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (er errorResponder) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	er.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (er errorResponder) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	er.log.Error("internal server error", zap.Error(err), zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	er.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

// statusCode maps a service error to its HTTP status and the message that is safe to return.
func statusCode(err error) (int, string) {
	var uerr *util.Error
	if !errors.As(err, &uerr) {
		return http.StatusInternalServerError, util.MessageInternalServerError
	}
	switch uerr.Code() {
	case util.ErrNotFound:
		return http.StatusNotFound, uerr.Message()
	case util.ErrBadParamInput:
		return http.StatusBadRequest, uerr.Message()
	case util.ErrConflict:
		return http.StatusConflict, uerr.Message()
	default:
		return http.StatusInternalServerError, util.MessageInternalServerError
	}
}

func (er errorResponder) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusCode(err)
	if status == http.StatusInternalServerError {
		er.ServerErrorResponse(w, r, err)
		return
	}
	er.errorResponse(w, r, status, message)
}

// maxCoordinate bounds query coordinates so squared snapping distances stay finite.
const maxCoordinate = 1e6

func checkCoordinate(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxCoordinate {
		return fmt.Errorf("%s must be a finite number between %g and %g", name, -maxCoordinate, maxCoordinate)
	}
	return nil
}

// parseCoordinate parses a required query parameter that must be a finite, bounded float.
func parseCoordinate(s, name string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is required and must be a valid float", name)
	}
	if err := checkCoordinate(name, f); err != nil {
		return 0, err
	}
	return f, nil
}

// optionalFloat parses an optional coordinate query parameter, nil when the parameter is absent.
func optionalFloat(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := parseCoordinate(s, name)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
