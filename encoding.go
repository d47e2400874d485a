package oneorboth

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Containers encode as a mapping holding a "left" and/or "right" key, one
// per slot the state guarantees. Decoding checks the keys against the target
// type first, so a decoded value always holds exactly the slots its type
// promises. A failed decode leaves the receiver unchanged.

var (
	// ErrMissingSlot is returned when a document lacks a slot the target
	// state guarantees.
	ErrMissingSlot = errors.New("missing slot")
	// ErrUnexpectedSlot is returned when a document carries a slot the target
	// state does not hold.
	ErrUnexpectedSlot = errors.New("unexpected slot")
)

const (
	leftKey  = "left"
	rightKey = "right"
)

var (
	_ json.Marshaler   = HasBoth[int, int]{}
	_ json.Unmarshaler = (*HasBoth[int, int])(nil)
	_ yaml.Marshaler   = HasBoth[int, int]{}
	_ yaml.Unmarshaler = (*HasBoth[int, int])(nil)
)

func checkSlots(state State, hasLeft, hasRight bool) error {
	if err := checkSlot(state, leftKey, state.Left(), hasLeft); err != nil {
		return err
	}
	return checkSlot(state, rightKey, state.Right(), hasRight)
}

func checkSlot(state State, key string, want, got bool) error {
	switch {
	case want && !got:
		return fmt.Errorf("decode %s: %w %q", state, ErrMissingSlot, key)
	case !want && got:
		return fmt.Errorf("decode %s: %w %q", state, ErrUnexpectedSlot, key)
	}
	return nil
}

// JSON

type jsonSlots struct {
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

// A JSON null slot decodes to RawMessage("null"), so nil means the key was
// absent.
func readJSON(state State, data []byte) (jsonSlots, error) {
	var slots jsonSlots
	if err := json.Unmarshal(data, &slots); err != nil {
		return slots, fmt.Errorf("decode %s: %w", state, err)
	}
	return slots, checkSlots(state, slots.Left != nil, slots.Right != nil)
}

func decodeJSONSlot[T any](state State, key string, raw json.RawMessage) (v T, err error) {
	if err = json.Unmarshal(raw, &v); err != nil {
		err = fmt.Errorf("decode %s %s: %w", state, key, err)
	}
	return
}

func (Empty[L, R]) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

func (c *Empty[L, R]) UnmarshalJSON(data []byte) error {
	_, err := readJSON(c.State(), data)
	return err
}

func (c HasLeft[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Left L `json:"left"`
	}{c.left})
}

func (c *HasLeft[L, R]) UnmarshalJSON(data []byte) error {
	slots, err := readJSON(c.State(), data)
	if err != nil {
		return err
	}
	left, err := decodeJSONSlot[L](c.State(), leftKey, slots.Left)
	if err != nil {
		return err
	}
	c.left = left
	return nil
}

func (c HasRight[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Right R `json:"right"`
	}{c.right})
}

func (c *HasRight[L, R]) UnmarshalJSON(data []byte) error {
	slots, err := readJSON(c.State(), data)
	if err != nil {
		return err
	}
	right, err := decodeJSONSlot[R](c.State(), rightKey, slots.Right)
	if err != nil {
		return err
	}
	c.right = right
	return nil
}

func (c HasBoth[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Left  L `json:"left"`
		Right R `json:"right"`
	}{c.left, c.right})
}

func (c *HasBoth[L, R]) UnmarshalJSON(data []byte) error {
	slots, err := readJSON(c.State(), data)
	if err != nil {
		return err
	}
	left, err := decodeJSONSlot[L](c.State(), leftKey, slots.Left)
	if err != nil {
		return err
	}
	right, err := decodeJSONSlot[R](c.State(), rightKey, slots.Right)
	if err != nil {
		return err
	}
	c.left, c.right = left, right
	return nil
}

// YAML

func readYAML(state State, node *yaml.Node) (left, right *yaml.Node, err error) {
	if node.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("decode %s: line %d: expected a mapping, got %s", state, node.Line, node.ShortTag())
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case leftKey:
			left = node.Content[i+1]
		case rightKey:
			right = node.Content[i+1]
		}
	}
	return left, right, checkSlots(state, left != nil, right != nil)
}

func decodeYAMLSlot[T any](state State, key string, node *yaml.Node) (v T, err error) {
	if err = node.Decode(&v); err != nil {
		err = fmt.Errorf("decode %s %s: %w", state, key, err)
	}
	return
}

func (Empty[L, R]) MarshalYAML() (any, error) {
	return map[string]any{}, nil
}

func (c *Empty[L, R]) UnmarshalYAML(node *yaml.Node) error {
	_, _, err := readYAML(c.State(), node)
	return err
}

func (c HasLeft[L, R]) MarshalYAML() (any, error) {
	return struct {
		Left L `yaml:"left"`
	}{c.left}, nil
}

func (c *HasLeft[L, R]) UnmarshalYAML(node *yaml.Node) error {
	leftNode, _, err := readYAML(c.State(), node)
	if err != nil {
		return err
	}
	left, err := decodeYAMLSlot[L](c.State(), leftKey, leftNode)
	if err != nil {
		return err
	}
	c.left = left
	return nil
}

func (c HasRight[L, R]) MarshalYAML() (any, error) {
	return struct {
		Right R `yaml:"right"`
	}{c.right}, nil
}

func (c *HasRight[L, R]) UnmarshalYAML(node *yaml.Node) error {
	_, rightNode, err := readYAML(c.State(), node)
	if err != nil {
		return err
	}
	right, err := decodeYAMLSlot[R](c.State(), rightKey, rightNode)
	if err != nil {
		return err
	}
	c.right = right
	return nil
}

func (c HasBoth[L, R]) MarshalYAML() (any, error) {
	return struct {
		Left  L `yaml:"left"`
		Right R `yaml:"right"`
	}{c.left, c.right}, nil
}

func (c *HasBoth[L, R]) UnmarshalYAML(node *yaml.Node) error {
	leftNode, rightNode, err := readYAML(c.State(), node)
	if err != nil {
		return err
	}
	left, err := decodeYAMLSlot[L](c.State(), leftKey, leftNode)
	if err != nil {
		return err
	}
	right, err := decodeYAMLSlot[R](c.State(), rightKey, rightNode)
	if err != nil {
		return err
	}
	c.left, c.right = left, right
	return nil
}
