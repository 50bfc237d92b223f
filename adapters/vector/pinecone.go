package vector

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/satriahrh/heylisten/domain/repositories"
	"github.com/satriahrh/heylisten/internal/config"
)

// NewPineconeStore connects to Pinecone and wraps the index in a
// BoundedStore. The index is created with the configured dimension and
// cosine metric when it does not exist yet.
func NewPineconeStore(ctx context.Context, cfg *config.Config, embedder repositories.Embedder, logger *zap.Logger) (*BoundedStore, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.PineconeAPIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	idx, err := ensureIndex(ctx, pc, cfg, logger)
	if err != nil {
		return nil, err
	}

	conn, err := pc.Index(pinecone.NewIndexConnParams{Host: idx.Host})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to index %s: %w", cfg.PineconeIndexName, err)
	}

	logger.Info("Connected to pinecone index",
		zap.String("index", cfg.PineconeIndexName),
		zap.Int("dimension", cfg.VectorDimension),
		zap.Int("maxRecords", cfg.MaxRecords))

	index := &pineconeIndex{conn: conn}
	return NewBoundedStore(index, embedder, cfg.VectorDimension, cfg.MaxRecords, logger), nil
}

func ensureIndex(ctx context.Context, pc *pinecone.Client, cfg *config.Config, logger *zap.Logger) (*pinecone.Index, error) {
	indexes, err := pc.ListIndexes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexes: %w", err)
	}
	for _, idx := range indexes {
		if idx.Name == cfg.PineconeIndexName {
			return idx, nil
		}
	}

	logger.Info("Creating pinecone index",
		zap.String("index", cfg.PineconeIndexName),
		zap.Int("dimension", cfg.VectorDimension))

	idx, err := pc.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:      cfg.PineconeIndexName,
		Dimension: int32(cfg.VectorDimension),
		Metric:    pinecone.Cosine,
		Cloud:     pinecone.Aws,
		Region:    "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index %s: %w", cfg.PineconeIndexName, err)
	}
	return idx, nil
}

// pineconeIndex adapts a Pinecone index connection to the vectorIndex
// surface the bounded store needs.
type pineconeIndex struct {
	conn *pinecone.IndexConnection
}

func (p *pineconeIndex) Upsert(ctx context.Context, id string, values []float32, metadata map[string]interface{}) error {
	md, err := structpb.NewStruct(metadata)
	if err != nil {
		return fmt.Errorf("failed to build metadata: %w", err)
	}

	_, err = p.conn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       id,
		Values:   values,
		Metadata: md,
	}})
	return err
}

func (p *pineconeIndex) DeleteByID(ctx context.Context, id string) error {
	return p.conn.DeleteVectorsById(ctx, []string{id})
}

func (p *pineconeIndex) TotalCount(ctx context.Context) (int, error) {
	stats, err := p.conn.DescribeIndexStats(ctx)
	if err != nil {
		return 0, err
	}
	return int(stats.TotalVectorCount), nil
}

func (p *pineconeIndex) Query(ctx context.Context, values []float32, topK int) ([]Match, error) {
	resp, err := p.conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          values,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(resp.Matches))
	for _, sv := range resp.Matches {
		if sv == nil || sv.Vector == nil {
			continue
		}
		m := Match{ID: sv.Vector.Id, Score: sv.Score}
		if sv.Vector.Metadata != nil {
			fields := sv.Vector.Metadata.GetFields()
			if v, ok := fields["text"]; ok {
				m.Text = v.GetStringValue()
			}
			if v, ok := fields["speaker"]; ok {
				m.Speaker = v.GetStringValue()
			}
			if v, ok := fields["timestamp"]; ok {
				m.Timestamp = v.GetNumberValue()
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}
