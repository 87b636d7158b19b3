package opt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Name Field[string] `json:"name"`
	Age  Field[int]    `json:"age"`
}

func TestUnmarshalDistinguishesThreeStates(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{}`), &p)

		assert.NoError(t, err)
		assert.False(t, p.Name.Set)
		assert.False(t, p.Name.Valid)
	})

	t.Run("null", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"name": null}`), &p)

		assert.NoError(t, err)
		assert.True(t, p.Name.Set)
		assert.False(t, p.Name.Valid)
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"name": "Ana", "age": 21}`), &p)

		assert.NoError(t, err)
		assert.True(t, p.Name.Set)
		assert.True(t, p.Name.Valid)
		assert.Equal(t, "Ana", p.Name.Value)
		assert.Equal(t, 21, p.Age.Value)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"age": "twenty"}`), &p)

		assert.Error(t, err)
	})
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Field[string]{}.Ptr())
	assert.Nil(t, Null[string]().Ptr())

	v := Of("hola").Ptr()
	assert.NotNil(t, v)
	assert.Equal(t, "hola", *v)
}

func TestPtrCopiesValue(t *testing.T) {
	f := Of(10)
	p := f.Ptr()
	*p = 99

	assert.Equal(t, 10, f.Value)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Of(42))
	assert.NoError(t, err)
	assert.Equal(t, "42", string(data))

	data, err = json.Marshal(Null[int]())
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
