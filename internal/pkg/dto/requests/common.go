package requests

import "github.com/goccy/go-json"

// StringList accepts either a bare JSON string or an array of strings. The
// editor sends rule values both ways depending on the operator.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = StringList{}
		} else {
			*s = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}
