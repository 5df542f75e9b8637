package member

import "github.com/mikededo/hubbl-sub000/internal/person"

type CreateWorkerRequest struct {
	person.PersonFields
	Password    string             `json:"password" validate:"required,min=6"`
	Permissions person.Permissions `json:"permissions"`
}

type UpdateWorkerRequest struct {
	person.PersonFields
	Permissions person.Permissions `json:"permissions"`
}

func (r UpdateWorkerRequest) ToEntity(id int) person.Worker {
	p := r.PersonFields.ToEntity()
	p.ID = id
	return person.Worker{Person: p, Permissions: r.Permissions}
}

type TrainerRequest struct {
	person.PersonFields
	WorkerCode string `json:"workerCode" validate:"omitempty,max=64"`
}

func (r TrainerRequest) ToEntity(id int) person.Trainer {
	p := r.PersonFields.ToEntity()
	p.ID = id
	return person.Trainer{Person: p, WorkerCode: r.WorkerCode}
}

type ClientRequest struct {
	person.PersonFields
	CovidPassport bool `json:"covidPassport"`
}

func (r ClientRequest) ToEntity(id int) person.Client {
	p := r.PersonFields.ToEntity()
	p.ID = id
	return person.Client{Person: p, CovidPassport: r.CovidPassport}
}
