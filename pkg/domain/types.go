package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/feedguard/feedguard/pkg/domain/moderation"
)

// VerdictJSON stores a moderation verdict in a jsonb column.
type VerdictJSON moderation.Verdict

func (v VerdictJSON) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *VerdictJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, v)
}
