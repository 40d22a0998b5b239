package llm

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/frugalops/foreman/proto"
)

// GRPCClient implements Client by calling the LLM sidecar via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a gRPC LLM client. grpc.NewClient dials lazily; the
// actual connection happens on the first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM sidecar at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete sends a single-shot completion request to the sidecar.
func (c *GRPCClient) Complete(ctx context.Context, input *CompleteInput) (*Completion, error) {
	resp, err := c.client.Complete(ctx, &llmv1.CompleteRequest{
		Model:        input.Model,
		SystemPrompt: input.SystemPrompt,
		UserPrompt:   input.UserPrompt,
		MaxTokens:    int32(input.MaxTokens),
		Temperature:  input.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}
	return &Completion{
		Content:      resp.GetContent(),
		ModelUsed:    resp.GetModelUsed(),
		InputTokens:  int(resp.GetInputTokens()),
		OutputTokens: int(resp.GetOutputTokens()),
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
