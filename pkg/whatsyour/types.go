package whatsyour

// PublicProfile is the public view of a user's profile.
type PublicProfile struct {
	Username        string           `json:"username"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Bio             string           `json:"bio"`
	Avatar          string           `json:"avatar"`
	IsProUser       bool             `json:"isProUser"`
	ProfileURL      string           `json:"profileUrl"`
	SubdomainURL    string           `json:"subdomainUrl"`
	CreatedAt       string           `json:"createdAt"`
	CustomDomain    *string          `json:"customDomain,omitempty"`
	SocialLinks     *SocialLinks     `json:"socialLinks,omitempty"`
	SpotlightButton *SpotlightButton `json:"spotlightButton,omitempty"`
}

// SocialLinks holds the optional social profile URLs.
type SocialLinks struct {
	Twitter  *string `json:"twitter,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// SpotlightButton is the call-to-action button shown on a profile.
type SpotlightButton struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Color string `json:"color"`
}

// AuthUser is the account returned by the authentication endpoints.
type AuthUser struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsProUser bool   `json:"isProUser"`
}

// LoginResponse is returned by AuthenticateUser.
type LoginResponse struct {
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
	Token   *string  `json:"token,omitempty"`
}

// TokenResponse is the unmodified body of the OAuth token endpoint.
type TokenResponse map[string]any

// AccessToken returns the access_token field, or "" when absent.
func (t TokenResponse) AccessToken() string { return t.stringField("access_token") }

// TokenType returns the token_type field, or "" when absent.
func (t TokenResponse) TokenType() string { return t.stringField("token_type") }

// ExpiresIn returns expires_in in seconds, or 0 when absent.
func (t TokenResponse) ExpiresIn() int {
	if v, ok := t["expires_in"].(float64); ok {
		return int(v)
	}
	return 0
}

func (t TokenResponse) stringField(key string) string {
	s, _ := t[key].(string)
	return s
}

var (
	profileRequired   = []string{"username", "firstName", "lastName", "bio", "avatar", "isProUser", "profileUrl", "subdomainUrl", "createdAt"}
	spotlightRequired = []string{"text", "url", "color"}
	authUserRequired  = []string{"_id", "email", "username", "firstName", "lastName", "isProUser"}
	loginRequired     = []string{"message", "user"}
)
