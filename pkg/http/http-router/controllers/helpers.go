package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/campus-route/pkg"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error       errorBody `json:"error"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// baseAPI carries what every controller needs to read requests and write responses.
type baseAPI struct {
	log      *zap.Logger
	validate *validator.Validate
	trans    ut.Translator
}

func newBaseAPI(log *zap.Logger) baseAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return baseAPI{log: log, validate: validate, trans: trans}
}

// writeJSON marshals data structure to encoded JSON response.
func (api *baseAPI) writeJSON(w http.ResponseWriter, status int, data interface{},
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

// readJSON decodes the request body into dst and validates it.
func (api *baseAPI) readJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid request body")
	}

	if err := api.validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid request body")
		}
		msgs := []string{}
		for _, e := range validationErrs {
			msgs = append(msgs, e.Translate(api.trans))
		}
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "validation error: %v", msgs)
	}
	return nil
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, pkg.ErrUnknownLocation):
		return http.StatusNotFound, "unknown_location"
	case errors.Is(err, pkg.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, pkg.ErrBadParamInput):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, pkg.ErrSearchExhausted):
		return http.StatusUnprocessableEntity, "search_exhausted"
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}

func (api *baseAPI) errorResponse(w http.ResponseWriter, r *http.Request, err error, suggestions []string) {
	status, code := statusFor(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		api.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Error(err))
		msg = pkg.MessageInternalServerError
	}

	resp := errorResponse{Error: errorBody{Code: code, Message: msg}, Suggestions: suggestions}
	if err := api.writeJSON(w, status, resp, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *baseAPI) ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, err, nil)
}

func (api *baseAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, pkg.ErrBadParamInput) {
		err = pkg.WrapErrorf(err, pkg.ErrBadParamInput, "bad request")
	}
	api.errorResponse(w, r, err, nil)
}

func (api *baseAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, fmt.Errorf("%w: %v", pkg.ErrInternalServerError, err), nil)
}
