// Package delivery fans upserted assignments out to subscribed tutors
// (direct messages) and the broadcast channel, through the bot gateway's
// gRPC transport. It owns duplicate-mode filtering, tutor matching, rate
// limiting, per-pair dedup, and the edit-on-click loop for broadcast
// posts.
package delivery

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/tuitionlab/assignflow/proto"
)

// Transport abstracts the bot gateway. The production implementation is
// the gRPC client below; tests substitute a fake.
type Transport interface {
	// SendDM delivers one direct message and returns the transport
	// message id. The idempotency key covers gateway-side retransmit
	// dedup for the same (tutor, assignment) pair.
	SendDM(ctx context.Context, tutorID, chatID, content, idempotencyKey string) (string, error)

	// Broadcast posts content to a channel. A non-empty editTarget edits
	// that existing post instead of creating a new one. Returns the
	// transport message id of the created or edited post.
	Broadcast(ctx context.Context, channel, content, editTarget string) (string, error)
}

// GRPCTransport wraps the gRPC connection to the bot gateway.
type GRPCTransport struct {
	conn   *grpc.ClientConn
	client pb.DeliveryServiceClient
}

// NewGRPCTransport creates a transport connected to the gateway address.
func NewGRPCTransport(addr string) (*GRPCTransport, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to delivery gateway: %w", err)
	}
	return &GRPCTransport{
		conn:   conn,
		client: pb.NewDeliveryServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection
func (t *GRPCTransport) Close() error {
	return t.conn.Close()
}

// SendDM implements Transport.
func (t *GRPCTransport) SendDM(ctx context.Context, tutorID, chatID, content, idempotencyKey string) (string, error) {
	resp, err := t.client.SendDM(ctx, &pb.SendDMRequest{
		TutorId:        tutorID,
		ChatId:         chatID,
		Content:        content,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return "", fmt.Errorf("send_dm failed: %w", err)
	}
	return resp.MessageId, nil
}

// Broadcast implements Transport.
func (t *GRPCTransport) Broadcast(ctx context.Context, channel, content, editTarget string) (string, error) {
	resp, err := t.client.Broadcast(ctx, &pb.BroadcastRequest{
		Channel:       channel,
		Content:       content,
		EditMessageId: editTarget,
	})
	if err != nil {
		return "", fmt.Errorf("broadcast failed: %w", err)
	}
	return resp.MessageId, nil
}
