// Package notify は会社単位のキャッシュ無効化をベストエフォートで
// 非同期に配送します。送信は決してブロックせず、失敗はログに残すだけで
// 呼び出し元には伝播しません。
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultQueueSize   = 256
	defaultSinkTimeout = 5 * time.Second
)

// Sink は無効化の実際の送信先です。
type Sink func(ctx context.Context, companyID string) error

// Invalidator は単一ワーカーの有界キューで無効化要求を直列に処理します。
// shift / violation / invite の各サービスが CacheInvalidator として
// 利用します。
type Invalidator struct {
	sink    Sink
	queue   chan string
	logger  *slog.Logger
	done    chan struct{}
	closeMu sync.RWMutex
	closed  bool
}

// Option は Invalidator の構成オプションです。
type Option func(*Invalidator)

// WithQueueSize はキュー長を指定します。
func WithQueueSize(n int) Option {
	return func(i *Invalidator) {
		if n > 0 {
			i.queue = make(chan string, n)
		}
	}
}

// WithLogger はロガーを指定します。
func WithLogger(logger *slog.Logger) Option {
	return func(i *Invalidator) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New は Invalidator を生成しワーカーを起動します。sink が nil の場合は
// 何もしない sink になります。
func New(sink Sink, opts ...Option) *Invalidator {
	if sink == nil {
		sink = func(context.Context, string) error { return nil }
	}

	inv := &Invalidator{
		sink:   sink,
		queue:  make(chan string, defaultQueueSize),
		logger: slog.Default(),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(inv)
	}

	go inv.run()
	return inv
}

// Invalidate は無効化要求をキューに積みます。キューが満杯でも
// ブロックせず、要求を破棄してログに残します。
func (i *Invalidator) Invalidate(companyID string) {
	if companyID == "" {
		return
	}

	i.closeMu.RLock()
	defer i.closeMu.RUnlock()
	if i.closed {
		return
	}

	select {
	case i.queue <- companyID:
	default:
		i.logger.Warn("cache invalidation dropped, queue full", "company_id", companyID)
	}
}

// Close はキューを閉じ、積まれた要求を処理し切ってから戻ります。
func (i *Invalidator) Close() {
	i.closeMu.Lock()
	if i.closed {
		i.closeMu.Unlock()
		return
	}
	i.closed = true
	close(i.queue)
	i.closeMu.Unlock()

	<-i.done
}

func (i *Invalidator) run() {
	defer close(i.done)

	for companyID := range i.queue {
		ctx, cancel := context.WithTimeout(context.Background(), defaultSinkTimeout)
		if err := i.sink(ctx, companyID); err != nil {
			i.logger.Warn("cache invalidation failed", "company_id", companyID, "error", err)
		}
		cancel()
	}
}
