package systems

import (
	"sync"

	"github.com/spaghettifunk/icemath/engine/core"
)

/**
 * @brief A unit of work for the job system. Run is executed on a worker;
 * OnComplete or OnFailure is then called on that same worker.
 */
type JobTask struct {
	/** @brief The work itself. A non-nil error marks the job as failed. */
	Run func() error
	/** @brief Called after Run succeeded. Optional. */
	OnComplete func()
	/** @brief Called with the error returned by Run. Optional. */
	OnFailure func(err error)
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
	shutdown   sync.Once
}

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, core.ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, core.ErrNegativeChannelSize
	}

	jq := make(chan JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	return js, nil
}

// NewJobSystemFromConfig builds a job system from the [jobs] section.
func NewJobSystemFromConfig(cfg core.JobsConfig) (*JobSystem, error) {
	return NewJobSystem(cfg.Workers, cfg.QueueSize)
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if job.Run == nil {
		return
	}
	if err := job.Run(); err != nil {
		core.LogWarn("job failed: %s", err.Error())
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete()
	}
}

// Workers returns the number of worker goroutines.
func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down. Queued jobs are drained before it
 * returns. Submitting after Shutdown panics.
 */
func (js *JobSystem) Shutdown() error {
	js.shutdown.Do(func() {
		close(js.jobQueue)
	})
	js.wg.Wait()
	return nil
}

// AddWorkNonBlocking queues the job from a new goroutine and returns immediately.
func (js *JobSystem) AddWorkNonBlocking(jt JobTask) {
	go js.Submit(jt)
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}
