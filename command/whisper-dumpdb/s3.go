// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const dumpContentType = "application/x-ndjson"

// destination - somewhere a finished dump is stored
type destination interface {
	Write(ctx context.Context, data []byte) error
}

// s3Destination - an S3 compatible bucket
type s3Destination struct {
	client *s3.Client
	bucket string
	key    string
}

// a non-blank endpoint selects path-style addressing (MinIO and similar)
func newS3Destination(ctx context.Context, bucket, key, region, endpoint string) (*s3Destination, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if "" != region {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if "" != endpoint {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &s3Destination{
		client: s3.NewFromConfig(cfg, s3opts...),
		bucket: bucket,
		key:    key,
	}, nil
}

// Write - upload the dump as the configured object
func (d *s3Destination) Write(ctx context.Context, data []byte) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(d.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(dumpContentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put object: %s/%s: %w", d.bucket, d.key, err)
	}
	return nil
}
