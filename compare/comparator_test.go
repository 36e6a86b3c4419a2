package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

func TestCompareIdenticalMessagesMatch(t *testing.T) {
	a := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}
	b := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}

	result, err := New(a, b).Compare()
	require.NoError(t, err)
	assert.True(t, result.IsMatch)
	assert.Equal(t, 1, result.Stats.TotalIEsCompared)
	assert.Equal(t, 1, result.Stats.ExactMatches)
}

func TestCompareDifferentSequenceFailsByDefault(t *testing.T) {
	a := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}
	b := &message.HeartbeatRequest{SeqNum: 2, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}

	result, err := New(a, b).Compare()
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
}

func TestIgnoreSequenceIgnoresSequenceNumber(t *testing.T) {
	a := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}
	b := &message.HeartbeatRequest{SeqNum: 2, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}

	result, err := New(a, b).IgnoreSequence().Compare()
	require.NoError(t, err)
	assert.True(t, result.IsMatch)
}

func TestTimestampToleranceAllowsSmallDrift(t *testing.T) {
	a := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}
	b := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 103}}

	strict, err := New(a, b).Compare()
	require.NoError(t, err)
	assert.False(t, strict.IsMatch)

	tolerant, err := New(a, b).TimestampToleranceSecs(5).Compare()
	require.NoError(t, err)
	assert.True(t, tolerant.IsMatch)

	tight, err := New(a, b).TimestampToleranceSecs(1).Compare()
	require.NoError(t, err)
	assert.False(t, tight.IsMatch)
}

func TestOptionalIeModeIgnoreMissingSkipsUnsharedIEs(t *testing.T) {
	features := ie.UPFunctionFeatures{Flags: ie.UPFeatureBUCP}
	complete := &message.AssociationSetupRequest{
		SeqNum:              1,
		NodeID:              ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: "upf.example.test"},
		RecoveryTimeStamp:   ie.RecoveryTimeStamp{UnixSeconds: 100},
		UPFunctionFeatures: &features,
	}
	minimal := &message.AssociationSetupRequest{
		SeqNum:            1,
		NodeID:            ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: "upf.example.test"},
		RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100},
	}

	strict, err := New(complete, minimal).Compare()
	require.NoError(t, err)
	assert.False(t, strict.IsMatch)

	lenient, err := New(complete, minimal).OptionalIeMode(OptionalIeIgnoreMissing).Compare()
	require.NoError(t, err)
	assert.True(t, lenient.IsMatch)
}

func TestIgnoreTimestampsReachesNestedUsageReportFields(t *testing.T) {
	report := func(start, end uint32) ie.UsageReport {
		return ie.UsageReport{
			URRID:              ie.URRID{Value: 1},
			URSEQN:             ie.URSEQN{Value: 1},
			UsageReportTrigger: ie.UsageReportTrigger{},
			StartTime:          &ie.StartTime{UnixSeconds: start},
			EndTime:            &ie.EndTime{UnixSeconds: end},
		}
	}
	a := &message.SessionReportRequest{
		SeqNum:       1,
		Seid:         1,
		ReportType:   ie.ReportType{},
		UsageReports: []ie.UsageReport{report(100, 200)},
	}
	b := &message.SessionReportRequest{
		SeqNum:       1,
		Seid:         1,
		ReportType:   ie.ReportType{},
		UsageReports: []ie.UsageReport{report(150, 250)},
	}

	strict, err := New(a, b).Compare()
	require.NoError(t, err)
	assert.False(t, strict.IsMatch)

	lenient, err := New(a, b).IgnoreTimestamps().Compare()
	require.NoError(t, err)
	assert.True(t, lenient.IsMatch)
}

func TestWithDetailedDiffRecordsDifferences(t *testing.T) {
	a := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 100}}
	b := &message.HeartbeatRequest{SeqNum: 2, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 200}}

	result, err := New(a, b).WithDetailedDiff().IncludePayloadInDiff().Compare()
	require.NoError(t, err)
	require.NotNil(t, result.Diff)
	assert.Greater(t, result.Diff.Len(), 0)
	assert.NotEmpty(t, result.Diff.Summary())
}
