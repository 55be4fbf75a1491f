package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Minio struct {
	Port       string
	Host       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type InternalConfig struct {
	App     App
	Scoring Scoring
	Chart   Chart
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	ShutdownTimeout           int
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	RabbitMQAssignmentQueue   string
}

type Scoring struct {
	CacheTTLInMinute int
}

type Chart struct {
	ExportURLExpiryInMinute int
}
