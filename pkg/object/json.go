package object

import (
	"encoding/json"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/errors"
	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/geometry"
)

// record is the persisted wire shape of an object. The project collaborator
// owns this layout; round-trip save/load depends on it staying stable.
type record struct {
	ID         string          `json:"id"`
	Type       Kind            `json:"type"`
	Position   geometry.Point  `json:"position"`
	Properties json.RawMessage `json:"properties"`
	Style      Style           `json:"style,omitempty"`
}

type rectangleProps struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

type circleProps struct {
	Radius float64 `json:"radius"`
}

type importedProps struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
	Source   string  `json:"source,omitempty"`
}

type textBoxProps struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text,omitempty"`
}

// MarshalJSON encodes the object in the persisted record shape.
func (o *Object) MarshalJSON() ([]byte, error) {
	var props any
	switch p := o.Size.(type) {
	case RectangleParams:
		props = rectangleProps{Width: p.WidthMm, Height: p.HeightMm, Rotation: p.RotationDeg}
	case CircleParams:
		props = circleProps{Radius: p.RadiusMm}
	case ImportedParams:
		props = importedProps{Width: p.WidthMm, Height: p.HeightMm, Rotation: p.RotationDeg, Source: p.SourceRef}
	case TextBoxParams:
		props = textBoxProps{Width: p.WidthMm, Height: p.HeightMm, Text: p.Text}
	default:
		return nil, errors.New(errors.ErrCodeUnknownKind, "cannot serialize object %q: unknown kind %T", o.ID, o.Size)
	}

	raw, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}

	return json.Marshal(record{
		ID:         o.ID,
		Type:       o.Kind(),
		Position:   o.Position,
		Properties: raw,
		Style:      o.Style,
	})
}

// UnmarshalJSON decodes the persisted record shape back into an object.
// An unrecognized "type" value is rejected rather than skipped.
func (o *Object) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	var size SizeParams
	switch rec.Type {
	case KindRectangle:
		var p rectangleProps
		if err := json.Unmarshal(rec.Properties, &p); err != nil {
			return err
		}
		size = RectangleParams{WidthMm: p.Width, HeightMm: p.Height, RotationDeg: p.Rotation}
	case KindCircle:
		var p circleProps
		if err := json.Unmarshal(rec.Properties, &p); err != nil {
			return err
		}
		size = CircleParams{RadiusMm: p.Radius}
	case KindImported:
		var p importedProps
		if err := json.Unmarshal(rec.Properties, &p); err != nil {
			return err
		}
		size = ImportedParams{WidthMm: p.Width, HeightMm: p.Height, RotationDeg: p.Rotation, SourceRef: p.Source}
	case KindTextBox:
		var p textBoxProps
		if err := json.Unmarshal(rec.Properties, &p); err != nil {
			return err
		}
		size = TextBoxParams{WidthMm: p.Width, HeightMm: p.Height, Text: p.Text}
	default:
		return errors.New(errors.ErrCodeUnknownKind, "unknown object type %q for id %q", rec.Type, rec.ID)
	}

	o.ID = rec.ID
	o.Position = rec.Position
	o.Size = size
	o.Style = rec.Style
	return nil
}
