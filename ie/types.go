package ie

// IeType identifies a PFCP Information Element per 3GPP TS 29.244
// Table 8.1.1-1. It is an open type: values outside the named constants
// below are valid wire types the iterator must still walk correctly (see
// Iterator and the forward-compatibility rule in DESIGN.md) — an
// unrecognized IeType is never itself an error.
//
// Constants are named TypeXxx rather than Xxx because each IE family
// also defines a Go struct named Xxx (Cause, NodeID, FTEID, ...) holding
// the decoded value; keeping the type-code constant and the value type
// in separate namespaces lets both read naturally at call sites
// (ie.TypeCause identifies the wire slot, ie.Cause holds the value).
type IeType uint16

// Type codes confirmed against the worked wire-format examples in
// spec.md §8 (Cause, Source Interface block start, Network Instance,
// F-TEID, Node ID, Recovery Time Stamp); the remaining codes follow the
// same TS 29.244 Table 8.1.1-1 ordering.
const (
	TypeReserved IeType = 0

	TypeCause                           IeType = 19
	TypeSourceInterface                 IeType = 20
	TypeFTEID                           IeType = 21
	TypeNetworkInstance                 IeType = 22
	TypeSDFFilter                       IeType = 23
	TypeApplicationID                   IeType = 24
	TypeGateStatus                      IeType = 25
	TypeMBR                             IeType = 26
	TypeGBR                             IeType = 27
	TypeQERCorrelationID                IeType = 28
	TypePrecedence                      IeType = 29
	TypeTransportLevelMarking           IeType = 30
	TypeVolumeThreshold                 IeType = 31
	TypeTimeThreshold                   IeType = 32
	TypeMonitoringTime                  IeType = 33
	TypeSubsequentVolumeThreshold       IeType = 34
	TypeSubsequentTimeThreshold         IeType = 35
	TypeInactivityDetectionTime         IeType = 36
	TypeReportingTriggers               IeType = 37
	TypeRedirectInformation             IeType = 38
	TypeReportType                      IeType = 39
	TypeOffendingIE                     IeType = 40
	TypeForwardingPolicy                IeType = 41
	TypeDestinationInterface            IeType = 42
	TypeUPFunctionFeatures              IeType = 43
	TypeApplyAction                     IeType = 44
	TypeDownlinkDataServiceInformation  IeType = 45
	TypeDownlinkDataNotificationDelay   IeType = 46
	TypeDLBufferingDuration             IeType = 47
	TypeDLBufferingSuggestedPacketCount IeType = 48
	TypePFCPSMReqFlags                  IeType = 49
	TypePFCPSRRspFlags                  IeType = 50
	TypeLoadControlInformation          IeType = 51
	TypeSequenceNumber                  IeType = 52
	TypeMetric                          IeType = 53
	TypeOverloadControlInformation      IeType = 54
	TypeTimer                           IeType = 55
	TypePDRID                           IeType = 56
	TypeFSEID                           IeType = 57
	TypeApplicationIDsPFDs              IeType = 58
	TypePFDContext                      IeType = 59
	TypeNodeID                          IeType = 60
	TypePFDContents                     IeType = 61
	TypeMeasurementMethod               IeType = 62
	TypeUsageReportTrigger              IeType = 63
	TypeMeasurementPeriod               IeType = 64
	TypeFQCSID                          IeType = 65
	TypeVolumeMeasurement               IeType = 66
	TypeDurationMeasurement             IeType = 67
	TypeApplicationDetectionInformation IeType = 68
	TypeTimeOfFirstPacket               IeType = 69
	TypeTimeOfLastPacket                IeType = 70
	TypeQuotaHoldingTime                IeType = 71
	TypeDroppedDLTrafficThreshold       IeType = 72
	TypeVolumeQuota                     IeType = 73
	TypeTimeQuota                       IeType = 74
	TypeStartTime                       IeType = 75
	TypeEndTime                         IeType = 76
	TypeQueryURRReference               IeType = 77
	TypeUsageReportSessionModification  IeType = 78
	TypeUsageReportSessionDeletion      IeType = 79
	TypeUsageReportSessionReport        IeType = 80
	TypeURRID                           IeType = 81
	TypeLinkedURRID                     IeType = 82
	TypeDownlinkDataReport              IeType = 83
	TypeOuterHeaderCreation             IeType = 84
	TypeCreateBAR                       IeType = 85
	TypeUpdateBARSessionModification    IeType = 86
	TypeRemoveBAR                       IeType = 87
	TypeBARID                           IeType = 88
	TypeCPFunctionFeatures              IeType = 89
	TypeUsageInformation                IeType = 90
	TypeApplicationInstanceID           IeType = 91
	TypeFlowInformation                 IeType = 92
	TypeUEIPAddress                     IeType = 93
	TypePacketRate                      IeType = 94
	TypeOuterHeaderRemoval              IeType = 95
	TypeRecoveryTimeStamp               IeType = 96
	TypeDLFlowLevelMarking              IeType = 97
	TypeHeaderEnrichment                IeType = 98
	TypeErrorIndicationReport           IeType = 99
	TypeMeasurementInformation          IeType = 100
	TypeNodeReportType                  IeType = 101
	TypeUserPlanePathFailureReport      IeType = 102
	TypeRemoteGTPUPeer                  IeType = 103
	TypeURSEQN                          IeType = 104
	TypeUpdateDuplicatingParameters     IeType = 105
	TypeActivatePredefinedRules         IeType = 106
	TypeDeactivatePredefinedRules       IeType = 107
	TypeFARID                           IeType = 108
	TypeQERID                          IeType = 109
	TypeOCIFlags                        IeType = 110
	TypeAssociationReleaseRequest       IeType = 111
	TypeGracefulReleasePeriod           IeType = 112
	TypePDNType                         IeType = 113
	TypeFailedRuleID                    IeType = 114
	TypeTimeQuotaMechanism              IeType = 115
	TypeUserPlaneIPResourceInformation  IeType = 116
	TypeUserPlaneInactivityTimer        IeType = 117
	TypeAggregatedURRs                  IeType = 118
	TypeMultiplier                      IeType = 119
	TypeAggregatedURRID                 IeType = 120
	TypeSubsequentVolumeQuota           IeType = 121
	TypeSubsequentTimeQuota             IeType = 122
	TypeRQI                             IeType = 123
	TypeQFI                             IeType = 124
	TypeQueryURR                        IeType = 125
	TypeAdditionalUsageReportsInfo      IeType = 126
	TypeTrafficEndpointID               IeType = 131
	TypeEthernetPacketFilter            IeType = 132
	TypeMACAddress                      IeType = 133
	TypeCTag                            IeType = 134
	TypeSTag                            IeType = 135
	TypeEthertype                       IeType = 136
	TypeProxying                        IeType = 137
	TypeEthernetFilterID                IeType = 138
	TypeEthernetFilterProperties        IeType = 139
	TypeSuggestedBufferingPacketsCount  IeType = 140
	TypeAlternateSMFIPAddress           IeType = 141
	TypeUEIPAddressPoolIdentity         IeType = 142
	TypeEthernetPDUSessionInformation   IeType = 143
	TypeEthernetTrafficInformation      IeType = 144
	TypeMACAddressesDetected            IeType = 145
	TypeMACAddressesRemoved             IeType = 146
	TypeEthernetInactivityTimer         IeType = 147
	TypeAdditionalMonitoringTime        IeType = 148
	TypeEventQuota                      IeType = 149
	TypeEventThreshold                  IeType = 150
	TypeSubsequentEventQuota            IeType = 151
	TypeSubsequentEventThreshold        IeType = 152
	TypeSNSSAI                          IeType = 159
	TypeIPMulticastAddressingInfo       IeType = 172
	TypeUEIPAddressPoolInformation      IeType = 177
	TypeSourceIPAddress                 IeType = 192
	TypeIPMulticastAddress              IeType = 193
	TypeSourceIPAddressPrefixLength     IeType = 194
	TypeDuplicatingParameters           IeType = 200
	TypeForwardingParameters            IeType = 201
	TypeUpdateForwardingParameters      IeType = 202
	TypePDI                             IeType = 203
	TypeCreatePDR                       IeType = 204
	TypeCreateFAR                       IeType = 205
	TypeCreateQER                       IeType = 206
	TypeCreateURR                       IeType = 207
	TypeCreatedPDR                      IeType = 208
	TypeUpdatePDR                       IeType = 209
	TypeUpdateFAR                       IeType = 210
	TypeUpdateQER                       IeType = 211
	TypeUpdateURR                       IeType = 212
	TypeRemovePDR                       IeType = 213
	TypeRemoveFAR                       IeType = 214
	TypeRemoveQER                       IeType = 215
	TypeRemoveURR                       IeType = 216
)

// ieTypeNames backs String() for debugging and the pfcpdump CLI table;
// it is a small, hand-maintained subset of the types this module decodes
// (some decoded types, such as SDF Filter and Volume Threshold, have no
// entry). Anything absent from the map prints as a numeric
// "IE(<n>)" so unknown types (forward-compat, §9) still render sensibly.
var ieTypeNames = map[IeType]string{
	TypeCause: "Cause", TypeSourceInterface: "SourceInterface", TypeFTEID: "FTEID",
	TypeNetworkInstance: "NetworkInstance", TypeGateStatus: "GateStatus", TypeMBR: "MBR",
	TypeGBR: "GBR", TypePrecedence: "Precedence", TypeTransportLevelMarking: "TransportLevelMarking",
	TypeReportType: "ReportType", TypeOffendingIE: "OffendingIE", TypeForwardingPolicy: "ForwardingPolicy",
	TypeDestinationInterface: "DestinationInterface", TypeUPFunctionFeatures: "UPFunctionFeatures",
	TypeApplyAction: "ApplyAction", TypeDownlinkDataServiceInformation: "DownlinkDataServiceInformation",
	TypeDownlinkDataNotificationDelay: "DownlinkDataNotificationDelay", TypeDLBufferingDuration: "DLBufferingDuration",
	TypeDLBufferingSuggestedPacketCount: "DLBufferingSuggestedPacketCount",
	TypeLoadControlInformation: "LoadControlInformation", TypeSequenceNumber: "SequenceNumber",
	TypeMetric: "Metric", TypeOverloadControlInformation: "OverloadControlInformation", TypeTimer: "Timer",
	TypePDRID: "PDRID", TypeFSEID: "FSEID", TypeNodeID: "NodeID", TypeMeasurementMethod: "MeasurementMethod",
	TypeUsageReportTrigger: "UsageReportTrigger", TypeVolumeMeasurement: "VolumeMeasurement",
	TypeDurationMeasurement: "DurationMeasurement", TypeQuotaHoldingTime: "QuotaHoldingTime",
	TypeVolumeQuota: "VolumeQuota", TypeTimeQuota: "TimeQuota", TypeStartTime: "StartTime", TypeEndTime: "EndTime",
	TypeUsageReportSessionModification: "UsageReport", TypeUsageReportSessionDeletion: "UsageReport",
	TypeUsageReportSessionReport: "UsageReport", TypeURRID: "URRID", TypeDownlinkDataReport: "DownlinkDataReport",
	TypeOuterHeaderCreation: "OuterHeaderCreation", TypeCreateBAR: "CreateBAR",
	TypeUpdateBARSessionModification: "UpdateBAR", TypeRemoveBAR: "RemoveBAR", TypeBARID: "BARID",
	TypeCPFunctionFeatures: "CPFunctionFeatures", TypeUEIPAddress: "UEIPAddress", TypePacketRate: "PacketRate",
	TypeOuterHeaderRemoval: "OuterHeaderRemoval", TypeRecoveryTimeStamp: "RecoveryTimeStamp",
	TypeMeasurementInformation: "MeasurementInformation", TypeNodeReportType: "NodeReportType",
	TypeURSEQN: "URSEQN", TypeFARID: "FARID", TypeQERID: "QERID", TypeGracefulReleasePeriod: "GracefulReleasePeriod",
	TypePDNType: "PDNType", TypeFailedRuleID: "FailedRuleID",
	TypeUserPlaneIPResourceInformation: "UserPlaneIPResourceInformation", TypeQFI: "QFI",
	TypeTrafficEndpointID: "TrafficEndpointID", TypeEthernetPacketFilter: "EthernetPacketFilter",
	TypeMACAddress: "MACAddress", TypeSuggestedBufferingPacketsCount: "SuggestedBufferingPacketsCount",
	TypeAlternateSMFIPAddress:        "AlternateSMFIPAddress",
	TypeEthernetTrafficInformation:   "EthernetTrafficInformation",
	TypeMACAddressesDetected:         "MACAddressesDetected",
	TypeMACAddressesRemoved:          "MACAddressesRemoved",
	TypeAdditionalMonitoringTime:     "AdditionalMonitoringTime",
	TypeSubsequentVolumeThreshold:    "SubsequentVolumeThreshold",
	TypeSubsequentTimeThreshold:      "SubsequentTimeThreshold",
	TypeSNSSAI:                       "SNSSAI",
	TypeIPMulticastAddressingInfo:    "IPMulticastAddressingInfo",
	TypeSourceIPAddress:              "SourceIPAddress",
	TypeIPMulticastAddress:           "IPMulticastAddress",
	TypeUEIPAddressPoolInformation:   "UEIPAddressPoolInformation",
	TypeDuplicatingParameters:        "DuplicatingParameters",
	TypeForwardingParameters:         "ForwardingParameters",
	TypeUpdateForwardingParameters:   "UpdateForwardingParameters",
	TypePDI:                          "PDI",
	TypeCreatePDR:                    "CreatePDR",
	TypeCreateFAR:                    "CreateFAR",
	TypeCreateQER:                    "CreateQER",
	TypeCreateURR:                    "CreateURR",
	TypeCreatedPDR:                   "CreatedPDR",
	TypeUpdatePDR:                    "UpdatePDR",
	TypeUpdateFAR:                    "UpdateFAR",
	TypeUpdateQER:                    "UpdateQER",
	TypeUpdateURR:                    "UpdateURR",
	TypeRemovePDR:                    "RemovePDR",
	TypeRemoveFAR:                    "RemoveFAR",
	TypeRemoveQER:                    "RemoveQER",
	TypeRemoveURR:                    "RemoveURR",
}

// String renders a human-readable IE name for logging and the pfcpdump
// CLI, falling back to the numeric type code for anything this package
// does not name.
func (t IeType) String() string {
	if name, ok := ieTypeNames[t]; ok {
		return name
	}
	return "IE(" + itoa(uint16(t)) + ")"
}

func itoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// zeroLengthAllowed lists the IE types for which a zero-length TLV is a
// valid, meaningful value ("absent/cleared") rather than a malformed
// encoding (§4.2, §8 P5). Network Instance is the canonical example from
// spec.md §8 scenario 6; the remaining entries are the other IEs in this
// module whose semantics include an explicit "cleared" state.
var zeroLengthAllowed = map[IeType]bool{
	TypeNetworkInstance:  true,
	TypeForwardingPolicy: true,
}

// ZeroLengthAllowed reports whether t may legally carry a zero-length
// payload. Callers outside this package (the pfcpdump CLI, tests) use it
// to explain a decode failure; IE decoders consult it directly.
func ZeroLengthAllowed(t IeType) bool {
	return zeroLengthAllowed[t]
}
