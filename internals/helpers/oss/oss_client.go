// file: internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSSService — upload stream ke bucket, hasilkan public URL yang durable.
   Dipakai untuk bukti transfer (slip) & QR pembayaran; file disimpan apa
   adanya (tanpa transform).
======================================================================= */

type OSSService struct {
	Bucket     *oss.Bucket
	BucketName string
	Endpoint   string
	BaseURL    string // override lewat OSS_PUBLIC_BASE_URL (mis. CDN)
	KeyPrefix  string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY_ID")
	sk := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Bucket:     bkt,
		BucketName: bucketName,
		Endpoint:   endpoint,
		BaseURL:    getEnv("OSS_PUBLIC_BASE_URL"),
		KeyPrefix:  strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) PublicURL(key string) string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/") + "/" + key
	}
	// https://{bucket}.{endpoint}/{key}
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

// UploadStream menulis objek dan set header supaya bisa di-serve inline.
func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

// UploadFromFormFile: multipart file → OSS, return (publicURL, key).
func (s *OSSService) UploadFromFormFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	ct, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	key := s.buildObjectKey(dir, fh.Filename)
	if err := s.UploadStream(ctx, key, reader, ct); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

/* ============ internal ============ */

func (s *OSSService) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), randHex(6), ext)
	parts := []string{}
	if s.KeyPrefix != "" {
		parts = append(parts, s.KeyPrefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
			ct = byExt
		}
	}
	// gabung head yang sudah terbaca + sisanya
	return ct, io.MultiReader(strings.NewReader(string(head)), src), nil
}
