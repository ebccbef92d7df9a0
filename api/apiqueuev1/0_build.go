package apiqueuev1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/service"
)

func BuildV1Queue(v1 *box.R, s service.Servicer) *box.R {

	queues := v1.Resource("/queues").
		WithActions(
			box.Get(listQueues),
			box.Post(createQueue),
		)

	v1.Resource("/queues/{queueName}").
		WithActions(
			box.Get(getQueue),
			box.ActionPost(push),
			box.ActionPost(pop),
			box.ActionPost(unshift),
			box.ActionPost(shift),
			box.ActionPost(find),
			box.ActionPost(stats),
			box.ActionPost(dropQueue),
		)

	v1.Resource("/queues/{queueName}/items/{itemIndex}").
		WithActions(
			box.Get(getItem),
		)

	return queues
}
