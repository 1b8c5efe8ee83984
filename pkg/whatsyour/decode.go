package whatsyour

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

func decodeProfile(m map[string]any) (*PublicProfile, error) {
	if err := requireKeys("profile", m, profileRequired); err != nil {
		return nil, err
	}
	if raw, ok := m["spotlightButton"]; ok && raw != nil {
		btn, ok := raw.(map[string]any)
		if !ok {
			return nil, newError(KindDecode, 0, nil, "profile: spotlightButton is %T, want object", raw)
		}
		if err := requireKeys("spotlightButton", btn, spotlightRequired); err != nil {
			return nil, err
		}
	}

	var p PublicProfile
	if err := decodeInto("profile", m, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeProfiles(m map[string]any) ([]PublicProfile, error) {
	raw, ok := m["profiles"]
	if !ok {
		return nil, newError(KindDecode, 0, nil, "search: missing field %q", "profiles")
	}
	if raw == nil {
		return []PublicProfile{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, newError(KindDecode, 0, nil, "search: profiles is %T, want array", raw)
	}

	out := make([]PublicProfile, 0, len(items))
	for i, item := range items {
		pm, ok := item.(map[string]any)
		if !ok {
			return nil, newError(KindDecode, 0, nil, "search: profiles[%d] is %T, want object", i, item)
		}
		p, err := decodeProfile(pm)
		if err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		out = append(out, *p)
	}
	return out, nil
}

func decodeAuthUser(m map[string]any) (*AuthUser, error) {
	if err := requireKeys("user", m, authUserRequired); err != nil {
		return nil, err
	}
	var u AuthUser
	if err := decodeInto("user", m, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// decodeUserField decodes the AuthUser nested under "user".
func decodeUserField(m map[string]any) (*AuthUser, error) {
	raw, ok := m["user"]
	if !ok || raw == nil {
		return nil, newError(KindDecode, 0, nil, "response: missing field %q", "user")
	}
	um, ok := raw.(map[string]any)
	if !ok {
		return nil, newError(KindDecode, 0, nil, "response: user is %T, want object", raw)
	}
	return decodeAuthUser(um)
}

func decodeLogin(m map[string]any) (*LoginResponse, error) {
	if err := requireKeys("login", m, loginRequired); err != nil {
		return nil, err
	}
	user, err := decodeUserField(m)
	if err != nil {
		return nil, err
	}

	resp := LoginResponse{User: *user}
	msg, ok := m["message"].(string)
	if !ok {
		return nil, newError(KindDecode, 0, nil, "login: message is %T, want string", m["message"])
	}
	resp.Message = msg
	if raw, ok := m["token"]; ok && raw != nil {
		tok, ok := raw.(string)
		if !ok {
			return nil, newError(KindDecode, 0, nil, "login: token is %T, want string", raw)
		}
		resp.Token = &tok
	}
	return &resp, nil
}

func requireKeys(what string, m map[string]any, keys []string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return newError(KindDecode, 0, nil, "%s: missing field %q", what, k)
		}
	}
	return nil
}

func decodeInto(what string, m map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return newError(KindDecode, 0, err, "%s: build decoder", what)
	}
	if err := dec.Decode(m); err != nil {
		return newError(KindDecode, 0, err, "%s: decode", what)
	}
	return nil
}
