package domain

import (
	"encoding/json"

	"api-template/pkg/errors"
)

// AccessTokenClaims represents the decoded payload of an access token.
// Optional claims are pointers so that an absent claim stays distinguishable
// from an empty string or zero.
type AccessTokenClaims struct {
	Iss             string   `json:"iss"`
	Exp             int64    `json:"exp"`
	Nbf             int64    `json:"nbf"`
	Iat             int64    `json:"iat"`
	Jti             string   `json:"jti"`
	JwtVer          int      `json:"jwt_ver"`
	Sub             string   `json:"sub"`
	ApplicationName *string  `json:"application_name,omitempty"`
	IdentityType    *string  `json:"identity_type,omitempty"`
	Amr             []string `json:"amr,omitempty"`
	AuthTime        *int64   `json:"auth_time,omitempty"`
	Azp             *string  `json:"azp,omitempty"`
	AccountID       *string  `json:"account_id,omitempty"`
	Aud             []string `json:"aud"`
	Scope           *string  `json:"scope,omitempty"`
	DataRegion      *string  `json:"data_region,omitempty"`
}

// Validate checks that every required claim is present. It performs no
// business validation: expiry ordering and signatures are the concern of the
// verifying gateway, not of this model.
func (c *AccessTokenClaims) Validate() error {
	missing := map[string]interface{}{}
	if c.Iss == "" {
		missing["iss"] = "required"
	}
	if c.Exp == 0 {
		missing["exp"] = "required"
	}
	if c.Nbf == 0 {
		missing["nbf"] = "required"
	}
	if c.Iat == 0 {
		missing["iat"] = "required"
	}
	if c.Jti == "" {
		missing["jti"] = "required"
	}
	if c.JwtVer == 0 {
		missing["jwt_ver"] = "required"
	}
	if c.Sub == "" {
		missing["sub"] = "required"
	}
	if len(missing) > 0 {
		return errors.NewValidationError("access token claims are missing required fields", missing)
	}
	return nil
}

// DecodeAccessTokenClaims unmarshals a JSON claim payload into
// AccessTokenClaims and validates requiredness. Mistyped claims (for example
// a string exp) and missing required claims both surface as validation
// errors.
func DecodeAccessTokenClaims(payload []byte) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, decodeError("access token claims", err)
	}
	if claims.Aud == nil {
		claims.Aud = []string{}
	}
	if err := claims.Validate(); err != nil {
		return nil, err
	}
	return &claims, nil
}

// UserInfo represents profile information for a human end user, as carried
// in the claims of a user token.
type UserInfo struct {
	Iss           string  `json:"iss"`
	Sub           string  `json:"sub"`
	IdentityType  string  `json:"identity_type"`
	GivenName     *string `json:"given_name,omitempty"`
	FamilyName    *string `json:"family_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	EmailVerified bool    `json:"email_verified"`
	AccountID     *string `json:"account_id,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	Picture       *string `json:"picture,omitempty"`
	DataRegion    *string `json:"data_region,omitempty"`
	UpdatedAt     int64   `json:"updated_at"`
}

// Validate checks that every required field is present
func (u *UserInfo) Validate() error {
	missing := map[string]interface{}{}
	if u.Iss == "" {
		missing["iss"] = "required"
	}
	if u.Sub == "" {
		missing["sub"] = "required"
	}
	if u.IdentityType == "" {
		missing["identity_type"] = "required"
	}
	if u.UpdatedAt == 0 {
		missing["updated_at"] = "required"
	}
	if len(missing) > 0 {
		return errors.NewValidationError("user info is missing required fields", missing)
	}
	return nil
}

// DecodeUserInfo unmarshals a JSON claim payload into UserInfo and validates
// requiredness
func DecodeUserInfo(payload []byte) (*UserInfo, error) {
	var info UserInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, decodeError("user info", err)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

// AppInfo represents the identity of a service client. Service tokens carry
// no user profile, only the application name and the client id.
type AppInfo struct {
	Service string `json:"service"`
	Sub     string `json:"sub"`
}

// Validate checks that both mandatory fields are present
func (a *AppInfo) Validate() error {
	missing := map[string]interface{}{}
	if a.Service == "" {
		missing["service"] = "required"
	}
	if a.Sub == "" {
		missing["sub"] = "required"
	}
	if len(missing) > 0 {
		return errors.NewValidationError("app info is missing required fields", missing)
	}
	return nil
}

// TokenInfo pairs a raw token string with its decoded claims
type TokenInfo struct {
	Token     string            `json:"token"`
	TokenData AccessTokenClaims `json:"token_data"`
}

// UserAndTokenInfo combines token information with the resolved user or
// application identity. The producer decides which identity, if any, is
// attached.
type UserAndTokenInfo struct {
	TokenInfo
	UserData *UserInfo `json:"user_data,omitempty"`
	AppData  *AppInfo  `json:"app_data,omitempty"`
}

// GetEmail returns the email address associated with the authenticated
// entity: the user's email for a user token, the application name for a
// service token. A user identity takes precedence even when its email is
// absent; there is deliberately no fallback to the app identity in that
// case. Fails when neither identity is attached.
func (u *UserAndTokenInfo) GetEmail() (*string, error) {
	if u.UserData != nil {
		return u.UserData.Email, nil
	}
	if u.AppData != nil {
		service := u.AppData.Service
		return &service, nil
	}
	return nil, errors.NewInvalidStateError("both user_data and app_data cannot be null")
}

// decodeError maps JSON decoding failures onto validation errors, keeping
// the offending field in the details when the encoder reports one
func decodeError(what string, err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		details := map[string]interface{}{}
		field := typeErr.Field
		if field == "" {
			field = "payload"
		}
		details[field] = "expected " + typeErr.Type.String() + ", got " + typeErr.Value
		return errors.NewValidationError(what+" have a mistyped field", details)
	}
	return errors.NewValidationError("failed to decode "+what, map[string]interface{}{
		"payload": err.Error(),
	})
}
