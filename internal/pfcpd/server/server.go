// Package server runs the pfcpd example node's N4 interface: a UDP
// listener that decodes inbound PFCP messages with this module's
// message package and drives the in-memory session table.
package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/your-org/pfcp/common/metrics"
	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/internal/pfcpd/config"
	"github.com/your-org/pfcp/internal/pfcpd/session"
	"github.com/your-org/pfcp/internal/pfcpd/usagerecorder"
	"github.com/your-org/pfcp/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Server is the PFCP (N4) UDP server: one read-loop goroutine decoding
// datagrams into message.Message values and dispatching them by type,
// the same shape as the teacher's PFCPServer but built on this
// module's codec instead of hand-rolled byte offsets.
type Server struct {
	cfg      *config.Config
	conn     *net.UDPConn
	sessions *session.Table
	recorder *usagerecorder.Recorder
	logger   *zap.Logger
	tracer   trace.Tracer

	startTime  time.Time
	cpAddr     *net.UDPAddr
	sequenceNo uint32
}

// New creates a Server bound to no socket yet; call Start to listen.
func New(cfg *config.Config, sessions *session.Table, recorder *usagerecorder.Recorder, logger *zap.Logger) *Server {
	return &Server{
		cfg:        cfg,
		sessions:   sessions,
		recorder:   recorder,
		logger:     logger,
		tracer:     otel.Tracer("pfcpd"),
		startTime:  time.Now(),
		sequenceNo: 1,
	}
}

// Start binds the configured UDP address and serves until ctx is
// cancelled, then closes the socket and returns.
func (s *Server) Start(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to resolve PFCP address: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on PFCP port: %w", err)
	}
	s.conn = conn

	s.logger.Info("pfcpd PFCP server started",
		zap.String("address", s.cfg.Address()),
		zap.String("node_id", s.cfg.Node.NodeID))

	go s.heartbeatLoop(ctx)

	s.readLoop(ctx)
	return conn.Close()
}

func (s *Server) readLoop(ctx context.Context) {
	buf := make([]byte, 65535)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_ = s.conn.SetReadDeadline(time.Now().Add(time.Second))
		n, addr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			s.logger.Error("failed to read PFCP datagram", zap.Error(err))
			continue
		}

		datagram := append([]byte(nil), buf[:n]...)
		s.handleDatagram(ctx, datagram, addr)
	}
}

func (s *Server) handleDatagram(ctx context.Context, datagram []byte, addr *net.UDPAddr) {
	ctx, span := s.tracer.Start(ctx, "pfcpd.handleDatagram")
	defer span.End()

	msg, err := message.Parse(datagram)
	if err != nil {
		s.logger.Warn("failed to decode PFCP message", zap.Error(err), zap.String("from", addr.String()))
		metrics.RecordUPFPFCPMessage("decode_error")
		span.SetAttributes(attribute.String("pfcp.decode_error", err.Error()))
		return
	}

	metrics.RecordUPFPFCPMessage(msg.MessageType().String())
	span.SetAttributes(
		attribute.String("pfcp.message_type", msg.MessageType().String()),
		attribute.Int64("pfcp.sequence_number", int64(msg.SequenceNumber())),
	)

	switch req := msg.(type) {
	case *message.HeartbeatRequest:
		s.handleHeartbeatRequest(req, addr)
	case *message.AssociationSetupRequest:
		s.handleAssociationSetupRequest(req, addr)
	case *message.SessionEstablishmentRequest:
		s.handleSessionEstablishmentRequest(ctx, req, addr)
	case *message.SessionModificationRequest:
		s.handleSessionModificationRequest(req, addr)
	case *message.SessionDeletionRequest:
		s.handleSessionDeletionRequest(req, addr)
	default:
		s.logger.Debug("no handler for PFCP message type, ignoring",
			zap.String("type", msg.MessageType().String()), zap.String("from", addr.String()))
	}
}

func (s *Server) handleHeartbeatRequest(req *message.HeartbeatRequest, addr *net.UDPAddr) {
	resp := &message.HeartbeatResponse{
		SeqNum:            req.SeqNum,
		RecoveryTimeStamp: s.recoveryTimeStamp(),
	}
	s.send(resp, addr)
}

func (s *Server) handleAssociationSetupRequest(req *message.AssociationSetupRequest, addr *net.UDPAddr) {
	s.cpAddr = addr

	resp := &message.AssociationSetupResponse{
		SeqNum:            req.SeqNum,
		NodeID:            s.nodeID(),
		Cause:             ie.Cause{Value: ie.CauseRequestAccepted},
		RecoveryTimeStamp: s.recoveryTimeStamp(),
		UPFunctionFeatures: &ie.UPFunctionFeatures{
			Flags: ie.UPFeatureBUCP,
		},
	}
	s.send(resp, addr)
	s.logger.Info("PFCP association established", zap.String("cp", addr.String()))
}

func (s *Server) handleSessionEstablishmentRequest(ctx context.Context, req *message.SessionEstablishmentRequest, addr *net.UDPAddr) {
	_, span := s.tracer.Start(ctx, "pfcpd.establishSession")
	defer span.End()

	localSEID := s.sessions.AllocateSEID()
	sess := s.sessions.Create(localSEID, req.FSEID.SEID, addr.String())

	var createdPDRs []ie.CreatedPDR
	for _, pdr := range req.CreatePDRs {
		if pdr.PDI.LocalFTEID != nil && pdr.PDI.LocalFTEID.Choose {
			teid := s.sessions.AllocateTEID()
			local := ie.FTEID{TEID: teid, IPv4: bindIPv4(s.cfg)}
			pdr.PDI.LocalFTEID = &local
			createdPDRs = append(createdPDRs, ie.CreatedPDR{PDRID: pdr.PDRID, LocalFTEID: &local})
		}
		sess.InstallPDR(pdr)
	}
	for _, far := range req.CreateFARs {
		sess.InstallFAR(far)
	}
	for _, qer := range req.CreateQERs {
		sess.InstallQER(qer)
	}
	for _, urr := range req.CreateURRs {
		sess.InstallURR(urr)
	}

	metrics.SetUPFActiveSessions(s.sessions.Count())
	metrics.RecordUPFPFCPSessionEstablishment("success")
	span.SetAttributes(
		attribute.Int64("pfcp.local_seid", int64(sess.LocalSEID)),
		attribute.Int64("pfcp.remote_seid", int64(sess.RemoteSEID)),
	)

	resp := &message.SessionEstablishmentResponse{
		SeqNum: req.SeqNum,
		Seid:   sess.RemoteSEID,
		NodeID: s.nodeID(),
		Cause:  ie.Cause{Value: ie.CauseRequestAccepted},
		FSEID: &ie.FSEID{
			SEID: sess.LocalSEID,
			IPv4: bindIPv4(s.cfg),
		},
		CreatedPDRs: createdPDRs,
	}
	s.send(resp, addr)
	s.logger.Info("PFCP session established",
		zap.Uint64("local_seid", sess.LocalSEID), zap.Uint64("remote_seid", sess.RemoteSEID))
}

func (s *Server) handleSessionModificationRequest(req *message.SessionModificationRequest, addr *net.UDPAddr) {
	sess, ok := s.sessions.Get(req.Seid)
	if !ok {
		resp := &message.SessionModificationResponse{
			SeqNum: req.SeqNum, Seid: req.Seid,
			Cause: ie.Cause{Value: ie.CauseSessionContextNotFound},
		}
		s.send(resp, addr)
		return
	}

	for _, pdr := range req.CreatePDRs {
		sess.InstallPDR(pdr)
	}
	for _, pdr := range req.UpdatePDRs {
		if existing, ok := sess.PDRs[pdr.PDRID.Value]; ok {
			sess.InstallPDR(mergeUpdatePDR(existing, pdr))
		}
	}
	for _, id := range req.RemovePDRs {
		delete(sess.PDRs, id.PDRID.Value)
	}
	for _, far := range req.CreateFARs {
		sess.InstallFAR(far)
	}
	for _, id := range req.RemoveFARs {
		delete(sess.FARs, id.FARID.Value)
	}

	resp := &message.SessionModificationResponse{
		SeqNum: req.SeqNum, Seid: sess.RemoteSEID,
		Cause: ie.Cause{Value: ie.CauseRequestAccepted},
	}
	s.send(resp, addr)
	s.logger.Info("PFCP session modified", zap.Uint64("local_seid", sess.LocalSEID))
}

func (s *Server) handleSessionDeletionRequest(req *message.SessionDeletionRequest, addr *net.UDPAddr) {
	sess, ok := s.sessions.Get(req.Seid)
	if !ok {
		resp := &message.SessionDeletionResponse{
			SeqNum: req.SeqNum, Seid: req.Seid,
			Cause: ie.Cause{Value: ie.CauseSessionContextNotFound},
		}
		s.send(resp, addr)
		return
	}

	var reports []ie.UsageReport
	for _, urr := range sess.URRs {
		report := ie.UsageReport{
			URRID:              urr.URRID,
			URSEQN:             ie.URSEQN{Value: 1},
			UsageReportTrigger: ie.UsageReportTrigger{Flags: 0},
		}
		reports = append(reports, report)
		if s.recorder != nil {
			s.recorder.Submit(usagerecorder.FromUsageReport(sess.LocalSEID, report))
		}
	}

	remoteSEID := sess.RemoteSEID
	s.sessions.Delete(req.Seid)
	metrics.SetUPFActiveSessions(s.sessions.Count())

	resp := &message.SessionDeletionResponse{
		SeqNum: req.SeqNum, Seid: remoteSEID,
		Cause:        ie.Cause{Value: ie.CauseRequestAccepted},
		UsageReports: reports,
	}
	s.send(resp, addr)
	s.logger.Info("PFCP session deleted", zap.Uint64("local_seid", req.Seid))
}

// heartbeatLoop periodically pings the CP function once an association
// exists, mirroring the teacher's sendHeartbeats goroutine.
func (s *Server) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.cpAddr == nil {
				continue
			}
			req := &message.HeartbeatRequest{
				SeqNum:            s.nextSequence(),
				RecoveryTimeStamp: s.recoveryTimeStamp(),
			}
			s.send(req, s.cpAddr)
		}
	}
}

func (s *Server) send(msg message.Message, addr *net.UDPAddr) {
	if _, err := s.conn.WriteToUDP(msg.Marshal(), addr); err != nil {
		s.logger.Error("failed to send PFCP message", zap.Error(err), zap.String("to", addr.String()))
	}
}

func (s *Server) nextSequence() uint32 {
	seq := s.sequenceNo
	s.sequenceNo++
	return seq
}

func (s *Server) nodeID() ie.NodeID {
	if ip := net.ParseIP(s.cfg.Node.NodeID); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: v4}
		}
		return ie.NodeID{Type: ie.NodeIDTypeIPv6, IPv6: ip.To16()}
	}
	return ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: s.cfg.Node.NodeID}
}

func (s *Server) recoveryTimeStamp() ie.RecoveryTimeStamp {
	return ie.RecoveryTimeStamp{UnixSeconds: uint32(s.startTime.Unix())}
}

func bindIPv4(cfg *config.Config) net.IP {
	if ip := net.ParseIP(cfg.PFCP.BindAddress); ip != nil {
		return ip.To4()
	}
	return net.IPv4zero
}

// mergeUpdatePDR applies an UpdatePDR's present fields onto an existing
// CreatePDR, leaving fields the update didn't touch unchanged.
func mergeUpdatePDR(existing ie.CreatePDR, update ie.UpdatePDR) ie.CreatePDR {
	if update.Precedence != nil {
		existing.Precedence = *update.Precedence
	}
	if update.PDI != nil {
		existing.PDI = *update.PDI
	}
	if update.OuterHeaderRemoval != nil {
		existing.OuterHeaderRemoval = update.OuterHeaderRemoval
	}
	if update.FARID != nil {
		existing.FARID = update.FARID
	}
	return existing
}

