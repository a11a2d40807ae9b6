package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gauravchand/vibe-task-board/internal/task"
)

const mongoDisconnectTimeout = 5 * time.Second

// MongoStore keeps one document per task. Seq preserves list order.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type taskDocument struct {
	ID        string `bson:"_id"`
	Title     string `bson:"title"`
	Completed bool   `bson:"completed"`
	Seq       int    `bson:"seq"`
}

func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

func (s *MongoStore) Load(ctx context.Context) ([]task.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}

	var docs []taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	tasks := make([]task.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, task.Task{ID: d.ID, Title: d.Title, Completed: d.Completed})
	}
	return tasks, nil
}

// Save replaces the collection contents with tasks.
func (s *MongoStore) Save(ctx context.Context, tasks []task.Task) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("mongo clear: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(tasks))
	for i, t := range tasks {
		docs = append(docs, taskDocument{ID: t.ID, Title: t.Title, Completed: t.Completed, Seq: i})
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
