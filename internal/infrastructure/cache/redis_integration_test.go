//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"skillmatrix/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisCacheSuite struct {
	suite.Suite
	client *redis.Client
	cache  *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	ctx := context.Background()

	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	uri, err := ctr.ConnectionString(ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)

	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())
	s.cache = cache.NewRedisFromClient(s.client, time.Minute, nil)
}

func (s *RedisCacheSuite) TearDownSuite() {
	_ = s.client.Close()
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *RedisCacheSuite) TestJSONRoundTrip() {
	ctx := context.Background()
	type view struct {
		ID    string            `json:"id"`
		Links map[string]string `json:"links"`
	}
	in := view{ID: "person-1", Links: map[string]string{"self": "/api/people/person-1"}}

	s.Require().NoError(s.cache.SetJSON(ctx, "people:detail:person-1", in, 0))

	var out view
	hit, err := s.cache.GetJSON(ctx, "people:detail:person-1", &out)
	s.Require().NoError(err)
	s.True(hit)
	s.Equal(in, out)

	ttl, err := s.client.TTL(ctx, "people:detail:person-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestMissIsNotAnError() {
	var out map[string]any
	hit, err := s.cache.GetJSON(context.Background(), "skills:detail:none", &out)
	s.Require().NoError(err)
	s.False(hit)
}

func (s *RedisCacheSuite) TestDeleteByPatternOnlyTouchesPrefix() {
	ctx := context.Background()
	for _, k := range []string{"people:list:a", "people:detail:b", "skills:list:c"} {
		s.Require().NoError(s.cache.SetJSON(ctx, k, k, 0))
	}

	s.Require().NoError(s.cache.DeleteByPattern(ctx, "people:*"))

	n, err := s.client.Exists(ctx, "people:list:a", "people:detail:b").Result()
	s.Require().NoError(err)
	s.Zero(n)
	n, err = s.client.Exists(ctx, "skills:list:c").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}
