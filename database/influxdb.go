package database

import (
	"context"
	"errors"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
)

// InfluxOptions addresses the bucket visit events are written to
type InfluxOptions struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// InfluxAPI bundles the client with the write api of the configured bucket
type InfluxAPI struct {
	Client   influxdb2.Client
	WriteAPI api.WriteAPIBlocking
}

// OpenInfluxConnection creates the client and checks the server is ready
func OpenInfluxConnection(opts InfluxOptions) (*InfluxAPI, error) {
	if opts.URL == "" {
		return nil, errors.New("influxdb url is empty")
	}

	client := influxdb2.NewClient(opts.URL, opts.Token)
	client.Options().SetPrecision(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	ready, err := client.Ready(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}
	if !ready {
		client.Close()
		return nil, errors.New("influxdb is not ready")
	}

	return &InfluxAPI{
		Client:   client,
		WriteAPI: client.WriteAPIBlocking(opts.Org, opts.Bucket),
	}, nil
}

// Close closes the connection to the store
func (i *InfluxAPI) Close() {
	i.Client.Close()
}
