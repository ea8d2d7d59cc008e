// model/passthrough.go
package model

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Provider records carry more fields than the console declares. The types
// below keep the undeclared ones in Extra and write them back on encode.

var (
	userFields         = jsonNames(reflect.TypeOf(User{}))
	userMetadataFields = jsonNames(reflect.TypeOf(UserMetadata{}))
	appMetadataFields  = jsonNames(reflect.TypeOf(AppMetadata{}))
	identityFields     = jsonNames(reflect.TypeOf(Identity{}))
)

func jsonNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			names[name] = struct{}{}
		}
	}
	return names
}

// unknownMembers returns the members of the object data whose keys are not
// in known, or nil when there are none.
func unknownMembers(data []byte, known map[string]struct{}) (map[string]json.RawMessage, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for key := range members {
		if _, ok := known[key]; ok {
			delete(members, key)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}

// withMembers adds extra to the encoded object base. Members already in
// base win.
func withMembers(base []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}
	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &members); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := members[key]; !ok {
			members[key] = value
		}
	}
	return json.Marshal(members)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	if err := json.Unmarshal(data, (*plain)(u)); err != nil {
		return err
	}
	extra, err := unknownMembers(data, userFields)
	u.Extra = extra
	return err
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	base, err := json.Marshal(plain(u))
	if err != nil {
		return nil, err
	}
	return withMembers(base, u.Extra)
}

func (m *UserMetadata) UnmarshalJSON(data []byte) error {
	type plain UserMetadata
	if err := json.Unmarshal(data, (*plain)(m)); err != nil {
		return err
	}
	extra, err := unknownMembers(data, userMetadataFields)
	m.Extra = extra
	return err
}

func (m UserMetadata) MarshalJSON() ([]byte, error) {
	type plain UserMetadata
	base, err := json.Marshal(plain(m))
	if err != nil {
		return nil, err
	}
	return withMembers(base, m.Extra)
}

func (m *AppMetadata) UnmarshalJSON(data []byte) error {
	type plain AppMetadata
	if err := json.Unmarshal(data, (*plain)(m)); err != nil {
		return err
	}
	extra, err := unknownMembers(data, appMetadataFields)
	m.Extra = extra
	return err
}

func (m AppMetadata) MarshalJSON() ([]byte, error) {
	type plain AppMetadata
	base, err := json.Marshal(plain(m))
	if err != nil {
		return nil, err
	}
	return withMembers(base, m.Extra)
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	type plain Identity
	if err := json.Unmarshal(data, (*plain)(i)); err != nil {
		return err
	}
	extra, err := unknownMembers(data, identityFields)
	i.Extra = extra
	return err
}

func (i Identity) MarshalJSON() ([]byte, error) {
	type plain Identity
	base, err := json.Marshal(plain(i))
	if err != nil {
		return nil, err
	}
	return withMembers(base, i.Extra)
}
