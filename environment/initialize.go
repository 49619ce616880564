package environment

import (
	"context"
	"time"

	"summoners-school/analytics"
	"summoners-school/client"
	"summoners-school/config"
	"summoners-school/controllers"
	"summoners-school/database"
	"summoners-school/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// refresh registry sizing
const (
	requestLimit  = 1000
	requestMaxAge = 30 * time.Minute
	flushInterval = time.Minute
)

// Environment is used for dependency-injection (package de-coupling)
type Environment struct {
	Tracker     *analytics.Tracker
	Requests    *client.Registry
	CourseModel models.CourseModel
	GuideModel  models.GuideModel

	logger *zap.Logger
	mongo  *mongo.Client
	redis  *redis.Client
	influx *database.InfluxAPI
}

// newEnv operates as the constructor to initialize the collection references (private)
func newEnv(db *mongo.Database, tracker *analytics.Tracker, requests *client.Registry, logger *zap.Logger) *Environment {
	return &Environment{
		Tracker:     tracker,
		Requests:    requests,
		CourseModel: models.NewCourseModel(db),
		GuideModel:  models.NewGuideModel(db),
		logger:      logger,
	}
}

// Initialize opens the stores named in cfg and injects them into the models.
// Analytics stores are optional: failures there are logged and tracking is disabled.
func Initialize(cfg config.Config, logger *zap.Logger) (*Environment, error) {
	mongoClient, err := database.OpenConnection(cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to mongodb", zap.String("db", cfg.DBName))

	var (
		tracker     *analytics.Tracker
		requests    *client.Registry
		redisClient *redis.Client
		influx      *database.InfluxAPI
	)

	if cfg.AnalyticsEnabled() {
		redisClient, influx = openAnalytics(cfg, logger)
		if redisClient != nil {
			requests = client.NewRegistry(requestLimit, requestMaxAge)

			var writer analytics.PointWriter
			if influx != nil {
				writer = influx.WriteAPI
			}
			tracker = analytics.NewTracker(redisClient, writer, requests, logger.Named("analytics"))
		}
	}

	env := newEnv(mongoClient.Database(cfg.DBName), tracker, requests, logger)
	env.mongo = mongoClient
	env.redis = redisClient
	env.influx = influx

	return env, nil
}

func openAnalytics(cfg config.Config, logger *zap.Logger) (*redis.Client, *database.InfluxAPI) {
	redisClient, err := database.OpenRedisConnection(database.RedisOptions{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.AnalyticsDB,
	})
	if err != nil {
		logger.Warn("visit counter unavailable, analytics disabled", zap.String("addr", cfg.CacheAddr()), zap.Error(err))
		return nil, nil
	}

	if cfg.AnalyticsURL == "" {
		return redisClient, nil
	}

	influx, err := database.OpenInfluxConnection(database.InfluxOptions{
		URL:    cfg.AnalyticsURL,
		Token:  cfg.AnalyticsToken,
		Org:    cfg.AnalyticsOrg,
		Bucket: cfg.AnalyticsBucket,
	})
	if err != nil {
		logger.Warn("visit events unavailable", zap.String("url", cfg.AnalyticsURL), zap.Error(err))
		return redisClient, nil
	}
	return redisClient, influx
}

// Controllers builds the request handlers on top of the environment
func (env *Environment) Controllers() *controllers.Env {
	opts := controllers.Options{
		Courses: env.CourseModel,
		Guides:  env.GuideModel,
		Logger:  env.logger,
	}
	if env.Tracker != nil {
		opts.Tracker = env.Tracker
	}
	if env.Requests != nil {
		opts.Clients = env.Requests
	}
	if env.mongo != nil {
		mongoClient := env.mongo
		opts.Ping = func(ctx context.Context) error {
			return database.Ping(ctx, mongoClient)
		}
	}
	return controllers.NewEnv(opts)
}

// Run prunes the refresh registry until ctx is done (no-op without analytics)
func (env *Environment) Run(ctx context.Context) {
	if env.Requests == nil {
		return
	}
	env.Requests.Run(ctx, flushInterval)
}

// Close releases all connections (when the server shuts down)
func (env *Environment) Close() {
	if env.influx != nil {
		env.influx.Close()
	}
	if env.redis != nil {
		if err := database.CloseRedisConnection(env.redis); err != nil {
			env.logger.Warn("closing redis", zap.Error(err))
		}
	}
	if env.mongo != nil {
		if err := database.CloseConnection(env.mongo); err != nil {
			env.logger.Warn("closing mongodb", zap.Error(err))
		}
	}
}
