package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	IO              Category = "IO"
	Internal        Category = "Internal"
	Sqlite          Category = "Sqlite"
	RabbitMQ        Category = "RabbitMQ"
	Encyclopedia    Category = "Encyclopedia"
	Host            Category = "Host"
	Dispatcher      Category = "Dispatcher"
	Validation      Category = "Validation"
	RequestResponse Category = "RequestResponse"
	Prometheus      Category = "Prometheus"
)

const (
	// General
	Startup         SubCategory = "Startup"
	Shutdown        SubCategory = "Shutdown"
	RateLimiting    SubCategory = "RateLimiting"
	ExternalService SubCategory = "ExternalService"

	// Sqlite
	Migration SubCategory = "Migration"
	Insert    SubCategory = "Insert"

	// Host
	Sampling     SubCategory = "Sampling"
	Optimization SubCategory = "Optimization"

	// Dispatcher / RabbitMQ
	Scheduling SubCategory = "Scheduling"
	Publish    SubCategory = "Publish"

	// Intent routing
	Research SubCategory = "Research"
	Strategy SubCategory = "Strategy"
)

const (
	AppName      ExtraKey = "AppName"
	LoggerName   ExtraKey = "Logger"
	ClientIp     ExtraKey = "ClientIp"
	Method       ExtraKey = "Method"
	StatusCode   ExtraKey = "StatusCode"
	BodySize     ExtraKey = "BodySize"
	Path         ExtraKey = "Path"
	Latency      ExtraKey = "Latency"
	RequestID    ExtraKey = "RequestId"
	Intent       ExtraKey = "Intent"
	Query        ExtraKey = "Query"
	Title        ExtraKey = "Title"
	ExecutionID  ExtraKey = "ExecutionId"
	ErrorMessage ExtraKey = "ErrorMessage"
)
