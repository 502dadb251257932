package enquiry

import "context"

// Acknowledgement is shown once an enquiry has been accepted.
const Acknowledgement = "Thank you for reaching out. Luv will reply as soon as possible."

// Submitter hands a validated enquiry to whatever delivers it.
type Submitter interface {
	Submit(ctx context.Context, e Enquiry) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, e Enquiry) error

func (f SubmitterFunc) Submit(ctx context.Context, e Enquiry) error {
	return f(ctx, e)
}

// DiscardSubmitter accepts every enquiry and delivers none of them.
type DiscardSubmitter struct{}

func (DiscardSubmitter) Submit(ctx context.Context, _ Enquiry) error {
	return ctx.Err()
}
