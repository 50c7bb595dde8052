package save

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/idlerpg/internal/data"
	"github.com/udisondev/idlerpg/internal/model"
)

func newTestSnapshot() *Snapshot {
	s := NewSnapshot()
	s.Zone = 12
	s.Hero.Level = 5
	s.Hero.Gold = 300
	s.Hero.Souls = 4
	s.Hero.UpgradeLevels[data.UpgradeArmor] = 2
	s.Hero.UnlockedSkills = []string{"thick_skin"}
	s.Inventory.Items = []*model.Item{
		{ID: "i1", Type: data.TypeRing, Level: 4, Rarity: data.ItemMagic,
			Stats: map[data.StatKey]float64{data.StatCritChance: 1.25, data.StatStrength: 3}},
	}
	s.Inventory.Equipped = map[data.Slot]*model.Item{
		data.SlotHead: {ID: "i2", Type: data.TypeHelmet, Level: 2, Rarity: data.ItemNormal,
			Stats: map[data.StatKey]float64{data.StatArmor: 5}},
	}
	return s
}

func TestEncodeDecode(t *testing.T) {
	in := newTestSnapshot()

	b, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(b)
	require.NoError(t, err)

	assert.Equal(t, in.Zone, out.Zone)
	assert.Equal(t, in.Hero, out.Hero)
	assert.Equal(t, in.Inventory, out.Inventory)
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	b, err := Encode(newTestSnapshot())
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	env.Payload = json.RawMessage(`{"zone":999}`)
	tampered, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = Decode(tampered)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	payload := []byte(`{}`)
	b, err := json.Marshal(Envelope{Version: Version + 1, Checksum: Checksum(payload), Payload: payload})
	require.NoError(t, err)

	_, err = Decode(b)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestChecksum_Stable(t *testing.T) {
	assert.Equal(t, Checksum([]byte("abc")), Checksum([]byte("abc")))
	assert.NotEqual(t, Checksum([]byte("abc")), Checksum([]byte("abd")))
	assert.Len(t, Checksum(nil), 64)
}
