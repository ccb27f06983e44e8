package util

import (
	"starchain/util/log"

	"errors"
	"sync/atomic"
)

var (
	ErrAlreadyStarted = errors.New("already started")
	ErrAlreadyStopped = errors.New("already stopped")
)

// Service is something that can be started and stopped.
type Service interface {
	Start() error
	OnStart() error

	Stop() error
	OnStop()

	IsRunning() bool
	C4Quit() <-chan struct{}

	String() string
}

// BaseService implements the Service bookkeeping. Embed it and call Init
// with the outer value so that OnStart/OnStop dispatch to it.
type BaseService struct {
	Logger log.Logger
	name string
	started uint32	// atomic
	stopped uint32	// atomic
	quit chan struct{}

	impl Service
}

func (bs *BaseService) Init(logger log.Logger, name string, impl Service) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	bs.Logger = logger
	bs.name = name
	bs.quit = make(chan struct{})
	bs.impl = impl
}

func (bs *BaseService) Start() error {
	if atomic.LoadUint32(&bs.stopped) == 1 {
		bs.Logger.Error("Not starting -- already stopped", "service", bs.name)
		return ErrAlreadyStopped
	}
	if !atomic.CompareAndSwapUint32(&bs.started, 0, 1) {
		return ErrAlreadyStarted
	}

	bs.Logger.Info("Starting", "service", bs.name)
	err := bs.impl.OnStart()
	if err != nil {
		atomic.StoreUint32(&bs.started, 0)
		return err
	}
	return nil
}

// OnStart does nothing. It implements Service.
func (bs *BaseService) OnStart() error { return nil }

func (bs *BaseService) Stop() error {
	if atomic.CompareAndSwapUint32(&bs.stopped, 0, 1) {
		bs.Logger.Info("Stopping", "service", bs.name)
		bs.impl.OnStop()
		close(bs.quit)
		return nil
	}
	return ErrAlreadyStopped
}

// OnStop does nothing. It implements Service.
func (bs *BaseService) OnStop() {}

func (bs *BaseService) IsRunning() bool {
	return atomic.LoadUint32(&bs.started) == 1 && atomic.LoadUint32(&bs.stopped) == 0
}

func (bs *BaseService) WaitForStop() {
	<-bs.quit
}

// C4Quit is closed when the service is stopped.
func (bs *BaseService) C4Quit() <-chan struct{} {
	return bs.quit
}

func (bs *BaseService) String() string {
	return bs.name
}
