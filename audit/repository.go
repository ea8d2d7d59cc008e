// audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"go.uber.org/zap"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
)

const defaultQuerySize = 100

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAccess indexes one audit document. Documents get a random id.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func buildQuery(q Query) map[string]interface{} {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": q.From.Format(time.RFC3339),
					"lte": q.To.Format(time.RFC3339),
				},
			},
		},
	}
	if q.ActorID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"actor_id.keyword": q.ActorID},
		})
	}
	if q.TargetID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"target_id.keyword": q.TargetID},
		})
	}

	size := q.Size
	if size <= 0 {
		size = defaultQuerySize
	}
	return map[string]interface{}{
		"size": size,
		"sort": []interface{}{
			map[string]interface{}{"timestamp": map[string]interface{}{"order": "desc"}},
		},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
	}
}

// QueryLogs searches the index for logs within a time frame, optionally
// filtered by actor and target, newest first.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(buildQuery(q)); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}

// LogRepository writes audit entries to the application log. It is used
// when no Elasticsearch cluster is configured and cannot be queried.
type LogRepository struct{}

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

func (r *LogRepository) LogAccess(_ context.Context, log AuditLog) error {
	fields := []zap.Field{
		zap.Time("timestamp", log.Timestamp),
		zap.String("actorID", log.ActorID),
		zap.String("action", log.Action),
		zap.String("targetID", log.TargetID),
		zap.Bool("accessGranted", log.AccessGranted),
	}
	if log.Permission != "" {
		fields = append(fields, zap.String("permission", log.Permission))
	}
	if len(log.ChangeDetails) > 0 {
		fields = append(fields, zap.ByteString("changeDetails", log.ChangeDetails))
	}
	logger.Info("AUDIT", fields...)
	return nil
}

func (r *LogRepository) QueryLogs(context.Context, Query) ([]AuditLog, error) {
	return nil, idc_errors.ErrAuditQueryUnsupported
}
