package entities

import (
	"bytes"
	"encoding/gob"
)

func (e *EventSnapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *EventSnapshot) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(e)
}

func init() {
	gob.Register(EventSnapshot{})
}
