package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Dimension is the physical quantity a reference measurement describes.
type Dimension string

const (
	DimensionWeight Dimension = "weight"
	DimensionVolume Dimension = "volume"
	DimensionLength Dimension = "length"
	DimensionHeight Dimension = "height"
	DimensionArea   Dimension = "area"
	DimensionSize   Dimension = "size"
)

// IsValid reports whether d is a known dimension.
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionWeight, DimensionVolume, DimensionLength, DimensionHeight, DimensionArea, DimensionSize:
		return true
	}
	return false
}

// Measurement is a single reference fact, e.g. "2300 kg of weight".
type Measurement struct {
	Dimension Dimension
	Value     float64
	Unit      string
}

// MarshalJSON encodes the measurement as {"<dimension>": value, "units": unit},
// the shape the model sees in the prompt.
func (m Measurement) MarshalJSON() ([]byte, error) {
	dim, err := json.Marshal(string(m.Dimension))
	if err != nil {
		return nil, err
	}
	unit, err := json.Marshal(m.Unit)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteByte('{')
	b.Write(dim)
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(m.Value, 'f', -1, 64))
	b.WriteString(`,"units":`)
	b.Write(unit)
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Reference is a named reference measurement.
type Reference struct {
	Item        string
	Measurement Measurement
}

// References is an ordered list of reference measurements.
type References []Reference

// MarshalJSON encodes the list as a JSON object keyed by item, keeping list order.
func (r References) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, ref := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(ref.Item)
		if err != nil {
			return nil, err
		}
		val, err := ref.Measurement.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// ReferenceTable maps a comparison category to its reference measurements.
// A table is built once at startup and only read afterwards.
type ReferenceTable map[string]References

// DefaultCategory is used when a request names no category or an unknown one.
const DefaultCategory = "general"

// Resolve returns the category name actually used and its references.
// Unknown or empty categories resolve to DefaultCategory.
func (t ReferenceTable) Resolve(category string) (string, References) {
	if refs, ok := t[category]; ok {
		return category, refs
	}
	return DefaultCategory, t[DefaultCategory]
}

// Category is a selectable comparison category with a display label.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Categories returns the comparison categories in display order.
func Categories() []Category {
	return []Category{
		{Key: "general", Label: "General (Mixed)"},
		{Key: "animals", Label: "Animals & Nature"},
		{Key: "sports", Label: "Sports & Athletics"},
		{Key: "everyday", Label: "Everyday Objects"},
		{Key: "food", Label: "Food & Cooking"},
		{Key: "tech", Label: "Technology"},
	}
}

// DefaultReferenceTable returns the built-in reference measurements.
// Every key returned by Categories is present.
func DefaultReferenceTable() ReferenceTable {
	return ReferenceTable{
		"general": {
			{Item: "shipping container (20ft)", Measurement: Measurement{Dimension: DimensionWeight, Value: 2300, Unit: "kg"}},
			{Item: "olympic swimming pool", Measurement: Measurement{Dimension: DimensionVolume, Value: 2500, Unit: "m3"}},
			{Item: "football field", Measurement: Measurement{Dimension: DimensionLength, Value: 100, Unit: "m"}},
		},
		"animals": {
			{Item: "blue whale (adult)", Measurement: Measurement{Dimension: DimensionWeight, Value: 140000, Unit: "kg"}},
			{Item: "african elephant (adult)", Measurement: Measurement{Dimension: DimensionWeight, Value: 6000, Unit: "kg"}},
			{Item: "giraffe (adult)", Measurement: Measurement{Dimension: DimensionHeight, Value: 5.5, Unit: "m"}},
		},
		"sports": {
			{Item: "soccer ball (FIFA standard)", Measurement: Measurement{Dimension: DimensionWeight, Value: 0.45, Unit: "kg"}},
			{Item: "olympic swimming pool", Measurement: Measurement{Dimension: DimensionLength, Value: 50, Unit: "m"}},
			{Item: "tennis court", Measurement: Measurement{Dimension: DimensionArea, Value: 260.87, Unit: "m2"}},
		},
		"everyday": {
			{Item: "standard brick", Measurement: Measurement{Dimension: DimensionWeight, Value: 2.7, Unit: "kg"}},
			{Item: "car tire", Measurement: Measurement{Dimension: DimensionWeight, Value: 11, Unit: "kg"}},
			{Item: "sheet of A4 paper", Measurement: Measurement{Dimension: DimensionWeight, Value: 0.005, Unit: "kg"}},
		},
		"food": {
			{Item: "bag of flour (standard)", Measurement: Measurement{Dimension: DimensionWeight, Value: 1, Unit: "kg"}},
			{Item: "grain of rice", Measurement: Measurement{Dimension: DimensionWeight, Value: 0.029, Unit: "g"}},
			{Item: "gallon of milk", Measurement: Measurement{Dimension: DimensionVolume, Value: 3.78541, Unit: "L"}},
		},
		"tech": {
			{Item: "smartphone (avg)", Measurement: Measurement{Dimension: DimensionWeight, Value: 0.17, Unit: "kg"}},
			{Item: "laptop (avg)", Measurement: Measurement{Dimension: DimensionWeight, Value: 2.2, Unit: "kg"}},
			{Item: "4K movie file", Measurement: Measurement{Dimension: DimensionSize, Value: 100, Unit: "GB"}},
		},
	}
}
