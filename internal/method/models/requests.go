// Package models declares the request schemas of the method API. Each
// schema is a fixed, ordered list of field descriptors; binding a raw JSON
// object produces a validated, typed request.
package models

import (
	"time"

	"scoreapi/internal/validation"
)

// AdminLogin is the reserved identity whose requests are privileged.
const AdminLogin = "admin"

var methodSchema = validation.NewSchema(
	validation.Def("account", validation.Char{Options: validation.Options{Nullable: true}}),
	validation.Def("login", validation.Char{Options: validation.Options{Required: true, Nullable: true}}),
	validation.Def("token", validation.Char{Options: validation.Options{Required: true, Nullable: true}}),
	validation.Def("arguments", validation.Arguments{Options: validation.Options{Required: true, Nullable: true}}),
	validation.Def("method", validation.Char{Options: validation.Options{Required: true}}),
)

// MethodRequest is the outer envelope carrying identity, the method name
// and the nested arguments object. Typed fields are populated only after
// the schema validates.
type MethodRequest struct {
	form *validation.Form

	Account   string
	Login     string
	Token     string
	Method    string
	Arguments map[string]any
}

// BindMethodRequest validates a raw request body against the envelope schema.
func BindMethodRequest(body map[string]any) *MethodRequest {
	form := methodSchema.Bind(body)
	form.Validate()

	r := &MethodRequest{form: form, Arguments: map[string]any{}}
	if form.Valid() {
		r.Account = stringValue(form, "account")
		r.Login = stringValue(form, "login")
		r.Token = stringValue(form, "token")
		r.Method = stringValue(form, "method")
		if args, ok := form.Value("arguments").(map[string]any); ok {
			r.Arguments = args
		}
	}
	return r
}

// Valid reports whether the envelope passed validation.
func (r *MethodRequest) Valid() bool { return r.form.Valid() }

// Errors exposes the per-field validation messages.
func (r *MethodRequest) Errors() map[string]string { return r.form.Errors() }

// IsAdmin reports whether the request carries the reserved admin identity.
func (r *MethodRequest) IsAdmin() bool { return r.Login == AdminLogin }

var onlineScoreSchema = validation.NewSchema(
	validation.Def("first_name", validation.Char{Options: validation.Options{Nullable: true}}),
	validation.Def("last_name", validation.Char{Options: validation.Options{Nullable: true}}),
	validation.Def("email", validation.Email{Options: validation.Options{Nullable: true}}),
	validation.Def("phone", validation.Phone{Options: validation.Options{Nullable: true}}),
	validation.Def("birthday", validation.BirthDay{Options: validation.Options{Nullable: true}}),
	validation.Def("gender", validation.Gender{Options: validation.Options{Nullable: true}}),
)

// scorePairs are the field pairs of which at least one must be fully
// supplied: the scoring computation needs a minimally complete identity
// signal, and no single field suffices.
var scorePairs = [][2]string{
	{"phone", "email"},
	{"first_name", "last_name"},
	{"gender", "birthday"},
}

// OnlineScoreRequest is the argument schema of the online_score method.
// All fields are individually optional; the cross-field pair rule applies
// once every supplied field passes on its own.
type OnlineScoreRequest struct {
	form *validation.Form

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  *time.Time
	Gender    *int
}

// BindOnlineScoreRequest validates the arguments object of an online_score
// call, including the cross-field pair rule.
func BindOnlineScoreRequest(args map[string]any) *OnlineScoreRequest {
	form := onlineScoreSchema.Bind(args)
	form.Validate()

	if form.Valid() && !hasValidPair(form) {
		form.AddError("arguments", "no valid argument pair")
	}

	r := &OnlineScoreRequest{form: form}
	if form.Valid() {
		r.FirstName = stringValue(form, "first_name")
		r.LastName = stringValue(form, "last_name")
		r.Email = stringValue(form, "email")
		r.Phone = stringValue(form, "phone")
		if birthday, ok := form.Value("birthday").(time.Time); ok {
			r.Birthday = &birthday
		}
		if gender, ok := form.Value("gender").(int); ok {
			r.Gender = &gender
		}
	}
	return r
}

func hasValidPair(form *validation.Form) bool {
	for _, pair := range scorePairs {
		if form.Has(pair[0]) && form.Has(pair[1]) {
			return true
		}
	}
	return false
}

// Valid reports whether the arguments passed validation.
func (r *OnlineScoreRequest) Valid() bool { return r.form.Valid() }

// Errors exposes the per-field validation messages.
func (r *OnlineScoreRequest) Errors() map[string]string { return r.form.Errors() }

// Supplied lists the supplied field names in schema order, for the call
// context.
func (r *OnlineScoreRequest) Supplied() []string { return r.form.Present() }

var clientsInterestsSchema = validation.NewSchema(
	validation.Def("client_ids", validation.ClientIDs{Options: validation.Options{Required: true}}),
	validation.Def("date", validation.Date{Options: validation.Options{Nullable: true}}),
)

// ClientsInterestsRequest is the argument schema of the clients_interests
// method.
type ClientsInterestsRequest struct {
	form *validation.Form

	ClientIDs []int64
	Date      *time.Time
}

// BindClientsInterestsRequest validates the arguments object of a
// clients_interests call.
func BindClientsInterestsRequest(args map[string]any) *ClientsInterestsRequest {
	form := clientsInterestsSchema.Bind(args)
	form.Validate()

	r := &ClientsInterestsRequest{form: form}
	if form.Valid() {
		if ids, ok := form.Value("client_ids").([]int64); ok {
			r.ClientIDs = ids
		}
		if date, ok := form.Value("date").(time.Time); ok {
			r.Date = &date
		}
	}
	return r
}

// Valid reports whether the arguments passed validation.
func (r *ClientsInterestsRequest) Valid() bool { return r.form.Valid() }

// Errors exposes the per-field validation messages.
func (r *ClientsInterestsRequest) Errors() map[string]string { return r.form.Errors() }

func stringValue(form *validation.Form, name string) string {
	s, _ := form.Value(name).(string)
	return s
}
