package preview

import (
	"encoding/json"

	"github.com/matzehuels/screenfit/pkg/adapt"
)

type jsonOutput struct {
	Caption  string         `json:"caption"`
	Snapshot adapt.Snapshot `json:"snapshot"`
	Frame    Frame          `json:"frame"`
}

// RenderJSON encodes the snapshot and its viewport layout as indented JSON.
func RenderJSON(s adapt.Snapshot, items ...Item) ([]byte, error) {
	out := jsonOutput{
		Caption:  Caption(s),
		Snapshot: s,
		Frame:    Layout(s, items),
	}
	return json.MarshalIndent(out, "", "  ")
}
