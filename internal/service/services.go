package service

// Services bundles the service layer for wiring into transports.
type Services struct {
	query    QueryService
	projects ProjectService
	tasks    TaskService
	comments CommentService
}

type ServicesConfig struct {
	Stores   StoreProvider
	TxRunner TxRunner
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		query:    NewQueryService(cfg.Stores),
		projects: NewProjectService(cfg.TxRunner),
		tasks:    NewTaskService(cfg.TxRunner),
		comments: NewCommentService(cfg.TxRunner),
	}
}

func (s *Services) Query() QueryService {
	return s.query
}

func (s *Services) Projects() ProjectService {
	return s.projects
}

func (s *Services) Tasks() TaskService {
	return s.tasks
}

func (s *Services) Comments() CommentService {
	return s.comments
}
