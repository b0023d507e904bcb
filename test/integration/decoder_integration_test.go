package integration

import (
	"bufio"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendmtp/dmtp-codec/internal/checksum"
	"github.com/opendmtp/dmtp-codec/internal/testdata/packets"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// readHexOrText turns a fixture's Hex field into a byte stream: binary
// fixtures are plain hex, text fixtures already start with '$' and carry
// their own framing.
func readHexOrText(t *testing.T, fixtureHex string) *bufio.Reader {
	t.Helper()
	if strings.HasPrefix(fixtureHex, "$") {
		return bufio.NewReader(strings.NewReader(fixtureHex))
	}
	raw, err := hex.DecodeString(fixtureHex)
	require.NoError(t, err)
	return bufio.NewReader(strings.NewReader(string(raw)))
}

// TestScenariosS1ThroughS3 decodes the same fixed-format event across all
// three wire encodings and checks they all produce the identical Event.
func TestScenariosS1ThroughS3(t *testing.T) {
	for _, tp := range []packets.DMTPPacket{packets.S1, packets.S2, packets.S3} {
		t.Run(tp.Name, func(t *testing.T) {
			session := dmtp.NewSession()
			pkt, err := session.ReadPacket(readHexOrText(t, tp.Hex))
			require.NoError(t, err)

			ev, mask, err := session.Decode(pkt)
			require.NoError(t, err)
			assert.Equal(t, uint16(0xF123), ev.StatusCode)
			assert.Equal(t, uint32(0x62D50000), ev.Timestamp[0])
			assert.Equal(t, 50.0, ev.Speed)
			assert.Equal(t, 180.0, ev.Heading)
			assert.Equal(t, uint32(7), ev.Sequence)
			assert.False(t, mask.HasUnknownFields())
		})
	}
}

// TestScenarioS4BadChecksum flips one hex digit of S2's checksum and
// expects a ChecksumFailed-class read error.
func TestScenarioS4BadChecksum(t *testing.T) {
	session := dmtp.NewSession()
	_, err := session.ReadPacket(readHexOrText(t, packets.S4.Hex))
	assert.Error(t, err)
}

// TestScenarioS5CustomFormatInstall installs a custom format via a 0xCF
// packet and then decodes an event against it.
func TestScenarioS5CustomFormatInstall(t *testing.T) {
	session := dmtp.NewSession()

	installPkt, err := session.ReadPacket(readHexOrText(t, packets.S5Install.Hex))
	require.NoError(t, err)
	require.Equal(t, protocol.ClientFormatDefinition, installPkt.Type)
	require.NoError(t, session.InstallFormat(installPkt.Payload))

	eventPkt, err := session.ReadPacket(readHexOrText(t, packets.S5Decode.Hex))
	require.NoError(t, err)

	ev, mask, err := session.Decode(eventPkt)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0015), ev.StatusCode)
	assert.Equal(t, uint32(0x62D50000), ev.Timestamp[0])
	assert.False(t, mask.HasUnknownFields())
}

// TestScenarioS6UploadFletcher exercises the Fletcher-16 primitive the
// upload-complete record relies on (the upload FSM itself is an external
// collaborator, out of this module's scope).
func TestScenarioS6UploadFletcher(t *testing.T) {
	f := checksum.NewFletcher16()
	f.Update(packets.S6.Data)
	c0, c1 := f.Sum()
	assert.Equal(t, packets.S6.C0, c0)
	assert.Equal(t, packets.S6.C1, c1)
	assert.True(t, f.Equals(packets.S6.C0, packets.S6.C1))
	assert.False(t, f.Equals(packets.S6.WrongC0, packets.S6.WrongC1))
}

// TestAllScenarioFixturesLoad sanity-checks that every fixture in the
// table decodes without panicking, grounding the scenario table against
// the framer end to end.
func TestAllScenarioFixturesLoad(t *testing.T) {
	for _, tp := range packets.AllValid() {
		t.Run(tp.Name, func(t *testing.T) {
			session := dmtp.NewSession()
			_, err := session.ReadPacket(readHexOrText(t, tp.Hex))
			assert.NoError(t, err)
		})
	}

	for _, tp := range packets.AllInvalid() {
		t.Run(tp.Name, func(t *testing.T) {
			session := dmtp.NewSession()
			_, err := session.ReadPacket(readHexOrText(t, tp.Hex))
			assert.Error(t, err)
		})
	}
}
