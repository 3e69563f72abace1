// Package cleanup collects the shutdown jobs the platform clients register,
// such as closing idle upstream connections, and runs them when the server
// stops.
package cleanup

import "log"

// Job is one named shutdown step.
type Job struct {
	Name string
	F    func() error
}

var (
	jobs []*Job
)

func Register(j *Job) {
	jobs = append(jobs, j)
}

func CleanUp() {
	for _, j := range jobs {
		log.Printf("Cleanup job %s started...", j.Name)
		err := j.F()
		if err != nil {
			log.Printf("Job finished with error: %v", err)
		} else {
			log.Println("Cleaned")
		}
	}
}
